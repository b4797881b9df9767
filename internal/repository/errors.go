package repository

import "errors"

// Ошибки, общие для всех реализаций хранилища (postgres и memory).
var (
	ErrPostNotFound       = errors.New("post not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrOTPSessionNotFound = errors.New("otp session not found")
)
