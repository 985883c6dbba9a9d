package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"mirrorly/internal/domain/user"
	"mirrorly/internal/infrastructure/persistence/mappers"
	"mirrorly/internal/infrastructure/persistence/models"
	"mirrorly/internal/shared/db"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(database *gorm.DB) *UserRepository {
	return &UserRepository{db: database}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := mappers.UserToModel(u)
	if err := tx.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*user.User, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var model models.UserModel
	if err := tx.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by id: %w", err)
	}

	return mappers.UserToDomain(&model)
}

func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	tx := db.GetTxFromContext(ctx, r.db)

	model := mappers.UserToModel(u)
	if err := tx.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}
