package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
)

// OTPRepository хранит сессии одноразовых кодов.
type OTPRepository struct {
	db *sqlx.DB
}

// NewOTPRepository создаёт экземпляр репозитория.
func NewOTPRepository(db *sqlx.DB) *OTPRepository {
	return &OTPRepository{db: db}
}

// Create сохраняет новую сессию.
func (r *OTPRepository) Create(ctx context.Context, session *models.OTPSession) error {
	_, err := r.db.NamedExecContext(ctx, `
		INSERT INTO otp_sessions (id, phone_number, code, expires_at, verified, created_at)
		VALUES (:id, :phone_number, :code, :expires_at, :verified, :created_at)
	`, session)
	if err != nil {
		return fmt.Errorf("otp repository: create %w", err)
	}

	return nil
}

// FindPending ищет самую свежую неподтверждённую сессию с таким номером и кодом.
// Истёкшие сессии тоже возвращаются: срок проверяет сервис.
func (r *OTPRepository) FindPending(ctx context.Context, phoneNumber, code string) (*models.OTPSession, error) {
	var session models.OTPSession
	err := r.db.GetContext(ctx, &session, `
		SELECT * FROM otp_sessions
		WHERE phone_number = $1 AND code = $2 AND verified = FALSE
		ORDER BY created_at DESC LIMIT 1
	`, phoneNumber, code)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOTPSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("otp repository: find pending %w", err)
	}

	return &session, nil
}

// MarkVerified переводит сессию в verified, только если она ещё не подтверждена.
// false означает, что сессию уже подтвердил другой запрос.
func (r *OTPRepository) MarkVerified(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE otp_sessions SET verified = TRUE WHERE id = $1 AND verified = FALSE`, id)
	if err != nil {
		return false, fmt.Errorf("otp repository: mark verified %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("otp repository: mark verified rows affected %w", err)
	}

	return rowsAffected == 1, nil
}
