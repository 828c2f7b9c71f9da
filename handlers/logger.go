package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/exp/slog"
)

// RequestLogger sets a request id and a request scoped logger, and logs the
// start and end of every request.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.New().String()
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		logger := base.With("request_id", requestID)
		c.Set(ContextLoggerKey, logger)

		start := time.Now()
		logger.Info("request_started", "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
		logger.Info("request_completed",
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
