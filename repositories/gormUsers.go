package repositories

import (
	"context"

	"reminder-api/db"
	"reminder-api/entities"
)

type userGormRepository struct {
	db db.Database
}

func NewUserGormRepository(database db.Database) UserRepository {
	return &userGormRepository{db: database}
}

func (r *userGormRepository) Create(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userGormRepository) GetByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}
