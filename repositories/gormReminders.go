package repositories

import (
	"context"

	"reminder-api/db"
	"reminder-api/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type reminderGormRepository struct {
	db db.Database
}

func NewReminderGormRepository(database db.Database) ReminderRepository {
	return &reminderGormRepository{db: database}
}

func scoped(tx *gorm.DB, ownerID uint) *gorm.DB {
	return tx.Preload("Email").Where("user_id = ?", ownerID)
}

// Create inserts the reminder and its email row in one transaction.
func (r *reminderGormRepository) Create(ctx context.Context, reminder *entities.Reminder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(reminder).Error
	})
}

func (r *reminderGormRepository) GetByID(ctx context.Context, ownerID, id uint) (*entities.Reminder, error) {
	return first(scoped(r.db.WithContext(ctx), ownerID).Where("id = ?", id))
}

func (r *reminderGormRepository) GetByNormalizedName(ctx context.Context, ownerID uint, normalized string) (*entities.Reminder, error) {
	return first(scoped(r.db.WithContext(ctx), ownerID).Where("name_normalized = ?", normalized).Order("id ASC"))
}

func (r *reminderGormRepository) ListByOwner(ctx context.Context, ownerID uint) ([]entities.Reminder, error) {
	reminders := []entities.Reminder{}
	err := scoped(r.db.WithContext(ctx), ownerID).Order("due_date ASC, id ASC").Find(&reminders).Error
	return reminders, err
}

// Update resolves the owned reminder, lets apply mutate it and saves the
// reminder and its email address in one transaction.
func (r *reminderGormRepository) Update(ctx context.Context, ownerID, id uint, apply func(*entities.Reminder) error) (*entities.Reminder, error) {
	var updated *entities.Reminder
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reminder, err := first(scoped(tx, ownerID).Where("id = ?", id))
		if err != nil {
			return err
		}
		if err := apply(reminder); err != nil {
			return err
		}
		if err := tx.Omit(clause.Associations).Save(reminder).Error; err != nil {
			return err
		}
		if err := saveEmail(tx, reminder); err != nil {
			return err
		}
		updated = reminder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func saveEmail(tx *gorm.DB, reminder *entities.Reminder) error {
	if reminder.Email == nil {
		return nil
	}
	reminder.Email.ReminderID = reminder.ID
	res := tx.Model(&entities.Email{}).Where("reminder = ?", reminder.ID).Update("email", reminder.Email.Address)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}
	reminder.Email.ID = 0
	return tx.Create(reminder.Email).Error
}

// Delete removes the email rows of an owned reminder, then the reminder.
func (r *reminderGormRepository) Delete(ctx context.Context, ownerID, id uint) (*entities.Reminder, error) {
	var deleted *entities.Reminder
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		reminder, err := first(scoped(tx, ownerID).Where("id = ?", id))
		if err != nil {
			return err
		}
		if err := tx.Where("reminder = ?", reminder.ID).Delete(&entities.Email{}).Error; err != nil {
			return err
		}
		res := tx.Where("id = ? AND user_id = ?", reminder.ID, ownerID).Delete(&entities.Reminder{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		deleted = reminder
		return nil
	})
	if err != nil {
		return nil, err
	}
	return deleted, nil
}

func first(query *gorm.DB) (*entities.Reminder, error) {
	var reminder entities.Reminder
	if err := query.First(&reminder).Error; err != nil {
		return nil, err
	}
	return &reminder, nil
}
