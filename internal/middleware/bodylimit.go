package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reflectlog/backend/internal/apierror"
)

// BodyLimit rejects request bodies larger than maxBytes with an RFC
// 9457 problem response. The analytics endpoints themselves never
// fail, but unbounded payloads are a transport concern, not a decode
// concern, so they are stopped before binding.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			apierror.WriteProblem(c, apierror.NewPayloadTooLargeError(
				apierror.GetRequestID(c), maxBytes))
			c.Abort()
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
