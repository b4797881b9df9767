package router

import (
	"github.com/gin-gonic/gin"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/config"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/http/handlers"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/http/middleware"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/logger"
)

func SetupRouter(
	cfg *config.Config,
	postHandler *handlers.PostHandler,
	eventHandler *handlers.EventHandler,
	phoneHandler *handlers.PhoneHandler,
	whatsAppHandler *handlers.WhatsAppHandler,
	healthHandler *handlers.HealthHandler,
	wsHandler *handlers.WSHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	// nil отключает доверие к X-Forwarded-For: ClientIP берётся из адреса соединения.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.Get().WithError(err).Warn("router: некорректный список доверенных прокси, заголовки прокси игнорируются")
		_ = r.SetTrustedProxies(nil)
	}
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)

	api := r.Group("/api")
	api.GET("/", postHandler.Root)
	api.GET("/posts", postHandler.ListPosts)

	api.POST("/share", eventHandler.Share)
	api.POST("/events/track", eventHandler.Track)
	api.GET("/stats/:user_id", eventHandler.Stats)

	phone := api.Group("/phone")
	{
		// Лимит только на выдачу кодов
		phone.POST("/verify", middleware.RateLimitMiddleware(cfg.OTPRateLimit, cfg.OTPRatePeriod), phoneHandler.Verify)
		phone.POST("/confirm", phoneHandler.Confirm)
	}
	api.GET("/user/:user_id/phone", phoneHandler.Status)

	api.POST("/whatsapp/send", whatsAppHandler.Send)

	if wsHandler != nil {
		api.GET("/ws", wsHandler.Handle)
	}

	return r
}
