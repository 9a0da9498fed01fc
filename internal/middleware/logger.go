package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/reflectlog/backend/internal/logger"
)

// Logger middleware for structured HTTP request logging
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Ctx(c.Request.Context()).Info("http request",
			logger.String("method", method),
			logger.String("path", path),
			logger.Int("status", c.Writer.Status()),
			logger.Int("bytes", c.Writer.Size()),
			logger.Duration("latency", time.Since(start)),
		)
	}
}
