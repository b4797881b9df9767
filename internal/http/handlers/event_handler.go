package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/dto"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/http/handlers/common"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/service"
)

// EventHandler принимает события взаимодействия с постами и отдаёт статистику.
type EventHandler struct {
	events *service.EventService
}

func NewEventHandler(events *service.EventService) *EventHandler {
	return &EventHandler{events: events}
}

// Share POST /api/share
func (h *EventHandler) Share(c *gin.Context) {
	var req dto.ShareRequest
	if err := common.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	msg, err := h.events.RecordShare(c.Request.Context(), req.UserID, req.PostID, req.Platform)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.ShareResponse{
		Success:  true,
		Message:  msg,
		Platform: req.Platform,
	})
}

// Track POST /api/events/track
func (h *EventHandler) Track(c *gin.Context) {
	var req dto.TrackEventRequest
	if err := common.BindJSON(c, &req); err != nil {
		_ = c.Error(err)
		return
	}

	if _, err := h.events.RecordEvent(c.Request.Context(), req.UserID, req.PostID, req.Action); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// Stats GET /api/stats/:user_id
func (h *EventHandler) Stats(c *gin.Context) {
	userID, err := common.PathParam(c, "user_id")
	if err != nil {
		_ = c.Error(err)
		return
	}

	stats, err := h.events.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
