package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/safecity/backend/internal/logger"
)

// RequestLogger logs every HTTP request with method, path, status and
// latency through the application logger.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info("Request handled", map[string]interface{}{
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"status":  c.Writer.Status(),
			"latency": time.Since(start).String(),
			"ip":      c.ClientIP(),
			"user_id": c.GetUint("user_id"),
		})
	}
}
