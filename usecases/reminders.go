package usecases

import (
	"context"
	"time"

	"reminder-api/apperrors"
	"reminder-api/entities"
	"reminder-api/normalize"
	"reminder-api/repositories"
	"reminder-api/services"

	"golang.org/x/exp/slog"
)

const (
	msgReminderNotFound  = "O lembrete buscado não existe."
	msgReminderDuplicate = "Lembrete de mesmo nome já salvo :/"
	msgReminderDeleteErr = "Lembrete não encontrado :/"
)

// Dispatcher sends the email payload of a reminder downstream.
type Dispatcher interface {
	Send(ctx context.Context, payload services.EmailPayload) error
}

// Notifier receives reminder lifecycle events after they are committed.
type Notifier interface {
	Publish(userID uint, eventType string, data interface{})
}

type CreateReminderInput struct {
	Name        string `validate:"required,nodigits"`
	Description string `validate:"required"`
	DueDate     time.Time
	SendEmail   bool
	Recurring   bool
	Email       string `validate:"required"`
}

// UpdateReminderInput carries a partial update. Empty Name, Description and
// a zero DueDate keep the stored values; SendEmail, Recurring and Email
// always replace them.
type UpdateReminderInput struct {
	Name        string `validate:"omitempty,nodigits"`
	Description string
	DueDate     time.Time
	SendEmail   bool
	Recurring   bool
	Email       string
}

type ReminderUseCase struct {
	repo       repositories.ReminderRepository
	dispatcher Dispatcher
	notifier   Notifier
	logger     *slog.Logger
	now        func() time.Time
}

func NewReminderUseCase(repo repositories.ReminderRepository, dispatcher Dispatcher, notifier Notifier, logger *slog.Logger) *ReminderUseCase {
	return &ReminderUseCase{
		repo:       repo,
		dispatcher: dispatcher,
		notifier:   notifier,
		logger:     logger,
		now:        time.Now,
	}
}

// Create persists a new reminder with its email, then attempts the
// create-flagged dispatch. A failed dispatch does not fail the call.
func (uc *ReminderUseCase) Create(ctx context.Context, ownerID uint, in CreateReminderInput) (*entities.Reminder, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	reminder := &entities.Reminder{
		Name:           in.Name,
		NameNormalized: normalize.Name(in.Name),
		Description:    in.Description,
		DueDate:        in.DueDate,
		SendEmail:      in.SendEmail,
		Recurring:      in.Recurring,
		UserID:         ownerID,
		Email:          &entities.Email{Address: in.Email},
	}

	if err := uc.repo.Create(ctx, reminder); err != nil {
		uc.logger.Warn("Erro ao adicionar lembrete", "name", in.Name, "error", err)
		return nil, apperrors.WrapDBError(err, msgReminderNotFound, msgReminderDuplicate)
	}
	uc.logger.Debug("Adicionado lembrete", "name", reminder.Name, "id", reminder.ID)

	uc.afterCommit(ctx, reminder, services.FlagCreate, "reminder.created")
	return reminder, nil
}

// GetByID returns the reminder id owned by ownerID.
func (uc *ReminderUseCase) GetByID(ctx context.Context, ownerID, id uint) (*entities.Reminder, error) {
	reminder, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		uc.logger.Warn("Erro ao buscar lembrete", "id", id, "error", err)
		return nil, apperrors.WrapDBError(err, msgReminderNotFound, msgReminderDuplicate)
	}
	return reminder, nil
}

// GetByName looks the reminder up by its normalized name.
func (uc *ReminderUseCase) GetByName(ctx context.Context, ownerID uint, name string) (*entities.Reminder, error) {
	reminder, err := uc.repo.GetByNormalizedName(ctx, ownerID, normalize.Name(name))
	if err != nil {
		uc.logger.Warn("Erro ao buscar lembrete", "name", name, "error", err)
		return nil, apperrors.WrapDBError(err, msgReminderNotFound, msgReminderDuplicate)
	}
	return reminder, nil
}

// ListByOwner returns every reminder of ownerID; an empty list is not an error.
func (uc *ReminderUseCase) ListByOwner(ctx context.Context, ownerID uint) ([]entities.Reminder, error) {
	reminders, err := uc.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.WrapDBError(err, msgReminderNotFound, msgReminderDuplicate)
	}
	uc.logger.Debug("lembretes encontrados", "count", len(reminders), "user_id", ownerID)
	return reminders, nil
}

// Update merges in into the owned reminder and attempts the update-flagged
// dispatch after commit.
func (uc *ReminderUseCase) Update(ctx context.Context, ownerID, id uint, in UpdateReminderInput) (*entities.Reminder, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	now := uc.now()
	reminder, err := uc.repo.Update(ctx, ownerID, id, func(r *entities.Reminder) error {
		applyUpdate(r, in, now)
		return nil
	})
	if err != nil {
		uc.logger.Info("Ocorreu um erro ao salvar o lembrete na base", "id", id, "error", err)
		return nil, apperrors.WrapDBError(err, msgReminderNotFound, msgReminderDuplicate)
	}
	uc.logger.Debug("Lembrete atualizado", "name", reminder.Name, "id", reminder.ID)

	uc.afterCommit(ctx, reminder, services.FlagUpdate, "reminder.updated")
	return reminder, nil
}

func applyUpdate(r *entities.Reminder, in UpdateReminderInput, now time.Time) {
	if in.Name != "" {
		r.Name = in.Name
	}
	r.NameNormalized = normalize.Name(r.Name)
	if in.Description != "" {
		r.Description = in.Description
	}
	if !in.DueDate.IsZero() {
		r.DueDate = in.DueDate
	}
	r.SendEmail = in.SendEmail
	r.Recurring = in.Recurring
	if r.Email == nil {
		r.Email = &entities.Email{ReminderID: r.ID}
	}
	r.Email.Address = in.Email
	r.UpdatedAt = &now
}

// Delete removes the owned reminder and its email. Every failure is
// reported as not found.
func (uc *ReminderUseCase) Delete(ctx context.Context, ownerID, id uint) (string, error) {
	reminder, err := uc.repo.Delete(ctx, ownerID, id)
	if err != nil {
		uc.logger.Warn("Erro ao deletar lembrete", "id", id, "error", err)
		return "", apperrors.Wrap(err, apperrors.KindNotFound, msgReminderDeleteErr)
	}
	uc.logger.Debug("Lembrete removido com sucesso", "id", id)

	if uc.notifier != nil {
		uc.notifier.Publish(ownerID, "reminder.deleted", reminder.View())
	}
	return reminder.Name, nil
}

// afterCommit runs the best-effort side effects of a committed write.
func (uc *ReminderUseCase) afterCommit(ctx context.Context, reminder *entities.Reminder, flag, event string) {
	if uc.dispatcher != nil && reminder.ShouldSendEmail() {
		if err := uc.dispatcher.Send(ctx, services.NewEmailPayload(reminder, flag)); err != nil {
			uc.logger.Warn("Erro ao validar e enviar email para lembrete", "id", reminder.ID, "flag", flag, "error", err)
		}
	}
	if uc.notifier != nil {
		uc.notifier.Publish(reminder.UserID, event, reminder.View())
	}
}
