package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/reflectlog/backend/internal/logger"
)

// HeaderRequestID is the correlation header honoured and echoed by the
// RequestID middleware.
const HeaderRequestID = "X-Request-ID"

// RequestID attaches a correlation ID to every request. An incoming
// X-Request-ID is trusted as-is; otherwise a new UUID is generated.
// The ID is stored on the request context for the logger and echoed in
// the response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set("request_id", requestID)
		c.Writer.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
