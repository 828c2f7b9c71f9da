package entities

import (
	"time"

	"reminder-api/normalize"

	"gorm.io/gorm"
)

type Reminder struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Name           string     `gorm:"size:140;uniqueIndex;not null" json:"name"`
	NameNormalized string     `gorm:"size:140;index;not null" json:"name_normalized"`
	Description    string     `gorm:"size:4000;not null" json:"description"`
	DueDate        time.Time  `json:"due_date"`
	SendEmail      bool       `gorm:"not null;default:false" json:"send_email"`
	Recurring      bool       `gorm:"not null;default:false" json:"recurring"`
	UserID         uint       `gorm:"not null;index" json:"user_id"`
	Email          *Email     `gorm:"foreignKey:ReminderID" json:"-"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      *time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// BeforeSave keeps NameNormalized in step with Name on every write.
func (r *Reminder) BeforeSave(tx *gorm.DB) (err error) {
	r.NameNormalized = normalize.Name(r.Name)
	return
}

// EmailAddress returns the associated address, or "" when there is none.
func (r *Reminder) EmailAddress() string {
	if r.Email == nil {
		return ""
	}
	return r.Email.Address
}

// ShouldSendEmail reports whether a dispatch must be attempted for r.
func (r *Reminder) ShouldSendEmail() bool {
	return r.SendEmail && r.EmailAddress() != ""
}
