package models

import "time"

// OTPSession: одна выдача одноразового кода на номер телефона.
type OTPSession struct {
	ID          string    `db:"id" json:"id"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	Code        string    `db:"code" json:"-"`
	ExpiresAt   time.Time `db:"expires_at" json:"expires_at"`
	Verified    bool      `db:"verified" json:"verified"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

// Expired сообщает, истёк ли код к моменту now. Само истечение нигде не хранится.
func (s *OTPSession) Expired(now time.Time) bool {
	return s.ExpiresAt.Before(now)
}
