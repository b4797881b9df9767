package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/dto"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/logger"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/pkg/apperror"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/ws"
)

// WSHandler отвечает за установку WebSocket соединений.
type WSHandler struct {
	hub      *ws.Hub
	upgrader websocket.Upgrader
}

// NewWSHandler создаёт новый хэндлер.
func NewWSHandler(hub *ws.Hub) *WSHandler {
	return &WSHandler{
		hub: hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// Handle обслуживает GET /api/ws?user_id=...
func (h *WSHandler) Handle(c *gin.Context) {
	userID := strings.TrimSpace(c.Query("user_id"))
	if userID == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("user_id is required", string(apperror.ErrCodeValidation)))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade уже записал ответ клиенту
		logger.Get().WithFields(logrus.Fields{"user_id": userID, "error": err}).Warn("ws: upgrade не удался")
		return
	}

	ws.NewClient(conn, h.hub, userID).Run(c.Request.Context())
}
