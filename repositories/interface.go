package repositories

import (
	"context"

	"reminder-api/entities"
)

type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByUsername(ctx context.Context, username string) (*entities.User, error)
}

// ReminderRepository is scoped by owner: every read, update and delete takes
// the owning user id and never matches a row owned by someone else.
type ReminderRepository interface {
	Create(ctx context.Context, reminder *entities.Reminder) error
	GetByID(ctx context.Context, ownerID, id uint) (*entities.Reminder, error)
	GetByNormalizedName(ctx context.Context, ownerID uint, normalized string) (*entities.Reminder, error)
	ListByOwner(ctx context.Context, ownerID uint) ([]entities.Reminder, error)
	Update(ctx context.Context, ownerID, id uint, apply func(*entities.Reminder) error) (*entities.Reminder, error)
	Delete(ctx context.Context, ownerID, id uint) (*entities.Reminder, error)
}
