package entities

// Email is the notification address attached to a single reminder.
type Email struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Address    string `gorm:"column:email;size:320" json:"email"`
	ReminderID uint   `gorm:"column:reminder;uniqueIndex;not null" json:"reminder"`
}
