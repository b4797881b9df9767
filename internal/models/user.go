package models

import "time"

// User: пользователь мессенджера. ID совпадает с внешним идентификатором платформы.
type User struct {
	ID          string    `db:"id" json:"id"`
	PhoneNumber *string   `db:"phone_number" json:"phone_number,omitempty"`
	Verified    bool      `db:"verified" json:"verified"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// PhoneStatus отражает, привязан ли к пользователю подтверждённый номер.
type PhoneStatus struct {
	HasPhone    bool   `json:"has_phone"`
	PhoneNumber string `json:"phone_number,omitempty"`
}
