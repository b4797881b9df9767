package dto

// MessageResponse is returned by the API root
type MessageResponse struct {
	Message string `json:"message"`
}

// ShareResponse is returned by POST /share
type ShareResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	Platform string `json:"platform"`
}

// SuccessResponse is a bare acknowledgement
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ActionResponse acknowledges an action with a human-readable message
type ActionResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// PhoneVerifyResponse is returned by POST /phone/verify
type PhoneVerifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OTPHint string `json:"otp_hint"`
}

// WhatsAppSendResponse is returned by POST /whatsapp/send
type WhatsAppSendResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	PhoneNumber string `json:"phone_number"`
}

// ErrorResponse represents a standard error response.
// Detail duplicates Error for the web client, which reads "detail".
type ErrorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail"`
	Code   string `json:"code,omitempty"`
}

// NewErrorResponse builds an ErrorResponse with Detail mirrored from message
func NewErrorResponse(message, code string) ErrorResponse {
	return ErrorResponse{Error: message, Detail: message, Code: code}
}
