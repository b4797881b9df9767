package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/dto"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/logger"
	"github.com/SakshamChauhan23/slack-employeeadvocacy/internal/pkg/apperror"
)

const internalErrorMessage = "Internal server error"

// ErrorHandler обрабатывает ошибки централизованно.
// AppError отдаётся клиенту как есть, остальные ошибки маскируются под 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Ответ уже отправлен хэндлером
		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		fields := logrus.Fields{
			"error":  err.Error(),
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		}

		if appErr, ok := apperror.As(err); ok && appErr.HTTPStatus < http.StatusInternalServerError {
			logger.Get().WithFields(fields).Debug("Ошибка запроса")
			c.JSON(appErr.HTTPStatus, dto.NewErrorResponse(appErr.Message, string(appErr.Code)))
			return
		}

		logger.Get().WithFields(fields).Error("Внутренняя ошибка")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(internalErrorMessage, string(apperror.ErrCodeInternal)))
	}
}
