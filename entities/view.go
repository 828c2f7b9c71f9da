package entities

import "time"

// ReminderView is the public representation of a reminder.
type ReminderView struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	NameNormalized string    `json:"name_normalized"`
	Description    string    `json:"description"`
	DueDate        time.Time `json:"due_date"`
	SendEmail      bool      `json:"send_email"`
	Email          string    `json:"email"`
	Recurring      bool      `json:"recurring"`
	UserID         uint      `json:"user_id"`
}

func (r *Reminder) View() ReminderView {
	return ReminderView{
		ID:             r.ID,
		Name:           r.Name,
		NameNormalized: r.NameNormalized,
		Description:    r.Description,
		DueDate:        r.DueDate,
		SendEmail:      r.SendEmail,
		Email:          r.EmailAddress(),
		Recurring:      r.Recurring,
		UserID:         r.UserID,
	}
}
