package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/logger"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/models"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/pkg/apperror"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/repository"
)

// DefaultOTPTTL: срок жизни кода, если в конфигурации не задан другой.
const DefaultOTPTTL = 10 * time.Minute

const otpHintMask = "****"

type OTPRepository interface {
	Create(ctx context.Context, session *models.OTPSession) error
	FindPending(ctx context.Context, phoneNumber, code string) (*models.OTPSession, error)
	MarkVerified(ctx context.Context, id string) (bool, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	BindPhone(ctx context.Context, userID, phoneNumber string, at time.Time) (*models.User, error)
}

// OTPRequest: результат выдачи кода. Сам код наружу не уходит.
type OTPRequest struct {
	Hint      string
	ExpiresAt time.Time
}

// OTPService выдаёт и подтверждает одноразовые коды, привязывая номер к пользователю.
//
// Сессия живёт в одном из состояний: ожидает подтверждения, подтверждена или истекла.
// Истечение не хранится, а вычисляется сравнением expires_at с текущим временем.
// Предыдущие неистёкшие коды для того же номера не отзываются.
type OTPService struct {
	sessions OTPRepository
	users    UserRepository
	clock    Clock
	codes    CodeGenerator
	ttl      time.Duration
}

// NewOTPService создаёт сервис. ttl <= 0 означает DefaultOTPTTL.
func NewOTPService(sessions OTPRepository, users UserRepository, clock Clock, codes CodeGenerator, ttl time.Duration) *OTPService {
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	return &OTPService{
		sessions: sessions,
		users:    users,
		clock:    clock,
		codes:    codes,
		ttl:      ttl,
	}
}

// RequestOTP создаёт новую сессию для номера и возвращает подсказку.
// Полный код пишется только в серверный лог: SMS шлюза нет.
func (s *OTPService) RequestOTP(ctx context.Context, phoneNumber, userID string) (*OTPRequest, error) {
	code, err := s.codes.Generate()
	if err != nil {
		return nil, fmt.Errorf("otp service: %w", err)
	}

	now := s.clock.Now()
	session := &models.OTPSession{
		ID:          uuid.NewString(),
		PhoneNumber: phoneNumber,
		Code:        code,
		ExpiresAt:   now.Add(s.ttl),
		Verified:    false,
		CreatedAt:   now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("otp service: request: %w", err)
	}

	logger.Get().WithFields(logrus.Fields{
		"phone_number": phoneNumber,
		"user_id":      userID,
		"otp_code":     code,
		"expires_at":   session.ExpiresAt,
	}).Info("OTP код выдан")

	return &OTPRequest{Hint: MaskCode(code), ExpiresAt: session.ExpiresAt}, nil
}

// ConfirmOTP подтверждает код и привязывает номер к пользователю.
func (s *OTPService) ConfirmOTP(ctx context.Context, phoneNumber, code, userID string) error {
	session, err := s.sessions.FindPending(ctx, phoneNumber, code)
	if errors.Is(err, repository.ErrOTPSessionNotFound) {
		return apperror.ErrInvalidCode
	}
	if err != nil {
		return fmt.Errorf("otp service: confirm: %w", err)
	}

	now := s.clock.Now()
	if session.Expired(now) {
		return apperror.ErrCodeExpired
	}

	// Условное обновление: из двух одновременных подтверждений выигрывает одно.
	ok, err := s.sessions.MarkVerified(ctx, session.ID)
	if err != nil {
		return fmt.Errorf("otp service: confirm: %w", err)
	}
	if !ok {
		return apperror.ErrInvalidCode
	}

	if _, err := s.users.BindPhone(ctx, userID, phoneNumber, now); err != nil {
		return fmt.Errorf("otp service: bind phone: %w", err)
	}

	logger.Get().WithFields(logrus.Fields{
		"phone_number": phoneNumber,
		"user_id":      userID,
	}).Info("номер телефона подтверждён")

	return nil
}

// GetUserPhoneStatus сообщает, есть ли у пользователя подтверждённый номер.
func (s *OTPService) GetUserPhoneStatus(ctx context.Context, userID string) (models.PhoneStatus, error) {
	user, err := s.users.GetByID(ctx, userID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return models.PhoneStatus{HasPhone: false}, nil
	}
	if err != nil {
		return models.PhoneStatus{}, fmt.Errorf("otp service: phone status: %w", err)
	}

	if !user.Verified || user.PhoneNumber == nil {
		return models.PhoneStatus{HasPhone: false}, nil
	}

	return models.PhoneStatus{HasPhone: true, PhoneNumber: *user.PhoneNumber}, nil
}

// MaskCode оставляет первые две цифры кода.
func MaskCode(code string) string {
	if len(code) < 2 {
		return otpHintMask
	}
	return code[:2] + otpHintMask
}
