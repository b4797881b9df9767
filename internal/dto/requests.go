package dto

// ShareRequest represents POST /share
type ShareRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	PostID   string `json:"post_id" binding:"required"`
	Platform string `json:"platform" binding:"required"`
}

// TrackEventRequest represents POST /events/track
type TrackEventRequest struct {
	UserID string `json:"user_id" binding:"required"`
	PostID string `json:"post_id" binding:"required"`
	Action string `json:"action" binding:"required"`
}

// PhoneVerifyRequest represents POST /phone/verify
type PhoneVerifyRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	UserID      string `json:"user_id" binding:"required"`
}

// PhoneConfirmRequest represents POST /phone/confirm
type PhoneConfirmRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	OTPCode     string `json:"otp_code" binding:"required"`
	UserID      string `json:"user_id" binding:"required"`
}

// WhatsAppSendRequest represents POST /whatsapp/send
type WhatsAppSendRequest struct {
	UserID string `json:"user_id" binding:"required"`
	PostID string `json:"post_id" binding:"required"`
}
