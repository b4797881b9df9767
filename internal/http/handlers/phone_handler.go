package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/dto"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/http/handlers/common"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/service"
)

// PhoneHandler обслуживает подтверждение номера телефона через OTP.
type PhoneHandler struct {
	otp *service.OTPService
}

func NewPhoneHandler(otp *service.OTPService) *PhoneHandler {
	return &PhoneHandler{otp: otp}
}

// Verify POST /api/phone/verify
func (h *PhoneHandler) Verify(c *gin.Context) {
	var req dto.PhoneVerifyRequest
	if err := common.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	res, err := h.otp.RequestOTP(c.Request.Context(), req.PhoneNumber, req.UserID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.PhoneVerifyResponse{
		Success: true,
		Message: "OTP sent to " + req.PhoneNumber,
		OTPHint: res.Hint,
	})
}

// Confirm POST /api/phone/confirm
func (h *PhoneHandler) Confirm(c *gin.Context) {
	var req dto.PhoneConfirmRequest
	if err := common.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.otp.ConfirmOTP(c.Request.Context(), req.PhoneNumber, req.OTPCode, req.UserID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ActionResponse{
		Success: true,
		Message: "Phone number verified successfully",
	})
}

// Status GET /api/user/:user_id/phone
func (h *PhoneHandler) Status(c *gin.Context) {
	userID, err := common.PathParam(c, "user_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	status, err := h.otp.GetUserPhoneStatus(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, status)
}
