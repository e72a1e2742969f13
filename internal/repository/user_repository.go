package repository

import (
	"context"
	"errors"
	"time"

	"catalog-backend/internal/database"
	"catalog-backend/internal/models"
	"catalog-backend/internal/utils"

	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	FindByLogin(ctx context.Context, login string) (*models.User, error)
}

type userRepository struct {
	db      *database.Database
	timeout time.Duration
}

func NewUserRepository(db *database.Database) UserRepository {
	return &userRepository{
		db:      db,
		timeout: db.GetQueryTimeout(),
	}
}

func (r *userRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, r.timeout)
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByLogin(ctx context.Context, login string) (*models.User, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := r.db.WithContext(ctx).Where("login = ?", login).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &utils.NotFoundError{Entity: "User", Key: "login", Value: login}
		}
		return nil, err
	}
	return &user, nil
}
