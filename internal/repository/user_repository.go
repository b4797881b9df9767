package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/repository/common"
)

// UserRepository инкапсулирует работу с пользователями.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository создаёт репозиторий пользователей.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// GetByID возвращает пользователя по ID.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return common.GetByID[models.User](ctx, r.db, "users", id, ErrUserNotFound)
}

// BindPhone привязывает подтверждённый номер к пользователю, создавая его при необходимости.
func (r *UserRepository) BindPhone(ctx context.Context, userID, phoneNumber string, at time.Time) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `
		INSERT INTO users (id, phone_number, verified, created_at, updated_at)
		VALUES ($1, $2, TRUE, $3, $3)
		ON CONFLICT (id) DO UPDATE
		SET phone_number = EXCLUDED.phone_number, verified = TRUE, updated_at = EXCLUDED.updated_at
		RETURNING *
	`, userID, phoneNumber, at)
	if err != nil {
		return nil, fmt.Errorf("user repository: bind phone %w", err)
	}

	return &user, nil
}
