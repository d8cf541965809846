package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs every request with method, path, status and duration.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
		}
		if status >= 500 {
			slog.Error("Request failed", args...)
		} else if status >= 400 {
			slog.Warn("Request rejected", args...)
		} else {
			slog.Info("Request completed", args...)
		}
	}
}
