package middleware

import (
	"errors"
	"log/slog"
	"net/http"

	"consult-contact-relay/internal/delivery/http/response"
	"consult-contact-relay/pkg/apperror"
	"consult-contact-relay/pkg/logger"

	"github.com/gin-gonic/gin"
)

// MsgUnexpected is sent for errors that are not AppErrors
const MsgUnexpected = "요청을 처리하지 못했습니다. 잠시 후 다시 시도해주세요."

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString(response.RequestIDKey)

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			// SECURITY: the wrapped cause is logged, only the public message is sent
			if appErr.Err != nil {
				level := slog.LevelWarn
				if appErr.Code >= http.StatusInternalServerError {
					level = slog.LevelError
				}
				logger.Log.Log(c.Request.Context(), level, "request failed",
					"request_id", reqID,
					"path", c.FullPath(),
					"status", appErr.Code,
					"error", appErr.Err.Error(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// SECURITY: Never expose internal error details to clients.
		logger.Log.Error("unhandled error", "request_id", reqID, "path", c.FullPath(), "error", err.Error())
		response.Error(c, http.StatusInternalServerError, MsgUnexpected, nil)
	}
}
