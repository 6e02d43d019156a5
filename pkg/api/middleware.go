package api

import (
	"time"

	"dbpool/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RequestLogger is gin middleware that logs each request through the
// structured logger
func RequestLogger() gin.HandlerFunc {
	log := logger.Get().With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
	}
}
