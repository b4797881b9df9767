package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/dto"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/http/handlers/common"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/service"
)

type WhatsAppHandler struct {
	whatsapp *service.WhatsAppService
}

func NewWhatsAppHandler(whatsapp *service.WhatsAppService) *WhatsAppHandler {
	return &WhatsAppHandler{whatsapp: whatsapp}
}

// Send POST /api/whatsapp/send
func (h *WhatsAppHandler) Send(c *gin.Context) {
	var req dto.WhatsAppSendRequest
	if err := common.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	phone, err := h.whatsapp.SendWhatsApp(c.Request.Context(), req.UserID, req.PostID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.WhatsAppSendResponse{
		Success:     true,
		Message:     "Post sent to WhatsApp",
		PhoneNumber: phone,
	})
}
