package apierror

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContentTypeProblemJSON is the MIME type for RFC 9457 Problem Details.
const ContentTypeProblemJSON = "application/problem+json"

// WriteProblem writes a ProblemDetails response to the gin context
// with the correct Content-Type header.
func WriteProblem(c *gin.Context, problem *ProblemDetails) {
	c.Header("Content-Type", ContentTypeProblemJSON)
	c.JSON(problem.Status, problem)
}

// GetRequestID extracts the request ID from the gin context.
// Returns empty string if not found.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return c.GetHeader("X-Request-ID")
}

// NewPayloadTooLargeError creates a 413 response for oversized bodies.
func NewPayloadTooLargeError(requestID string, maxBytes int64) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypePayloadTooLarge,
		Title:       TitlePayloadTooLarge,
		Status:      http.StatusRequestEntityTooLarge,
		Detail:      fmt.Sprintf("Request body exceeds the %d byte limit", maxBytes),
		RequestID:   requestID,
		UserMessage: "The submitted data set is too large for a single request",
	}
}

// NewNotFoundError creates a 404 Not Found response.
func NewNotFoundError(requestID, path string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeNotFound,
		Title:       TitleNotFound,
		Status:      http.StatusNotFound,
		Detail:      fmt.Sprintf("No route for '%s'", path),
		Instance:    path,
		RequestID:   requestID,
		UserMessage: "The requested resource could not be found",
	}
}

// NewInternalError creates a 500 Internal Server Error response.
// Internal details are intentionally hidden from the client; the
// actual error should be logged server-side.
func NewInternalError(requestID string) *ProblemDetails {
	return &ProblemDetails{
		Type:        TypeInternal,
		Title:       TitleInternal,
		Status:      http.StatusInternalServerError,
		Detail:      "An unexpected error occurred",
		RequestID:   requestID,
		UserMessage: "Something went wrong. Please try again later.",
	}
}
