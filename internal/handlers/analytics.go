package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/reflectlog/backend/internal/logger"
	"github.com/reflectlog/backend/internal/models"
	"github.com/reflectlog/backend/internal/service"
)

// AnalyticsHandler exposes the analytics engine over HTTP. Per the
// best-effort contract, these endpoints always answer 200: an
// undecodable or empty body yields the hollow default result instead
// of an error response.
type AnalyticsHandler struct {
	analyticsService service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		analyticsService: analyticsService,
	}
}

// TimePatterns handles POST /api/v1/analytics/time-patterns
func (h *AnalyticsHandler) TimePatterns(c *gin.Context) {
	var reflections []models.Reflection
	if err := c.ShouldBindJSON(&reflections); err != nil || len(reflections) == 0 {
		logDegraded(c, "time-patterns", err)
		c.JSON(http.StatusOK, models.EmptyTimePatternsResult())
		return
	}

	c.JSON(http.StatusOK, h.analyticsService.TimePatterns(c.Request.Context(), reflections))
}

// CoOccurrence handles POST /api/v1/analytics/co-occurrence
func (h *AnalyticsHandler) CoOccurrence(c *gin.Context) {
	var reflections []models.Reflection
	if err := c.ShouldBindJSON(&reflections); err != nil || len(reflections) == 0 {
		logDegraded(c, "co-occurrence", err)
		c.JSON(http.StatusOK, models.EmptyCoOccurrences())
		return
	}

	c.JSON(http.StatusOK, h.analyticsService.CoOccurrence(c.Request.Context(), reflections))
}

// Trends handles POST /api/v1/analytics/trends
func (h *AnalyticsHandler) Trends(c *gin.Context) {
	var reflections []models.Reflection
	if err := c.ShouldBindJSON(&reflections); err != nil || len(reflections) == 0 {
		logDegraded(c, "trends", err)
		c.JSON(http.StatusOK, models.EmptyTrendsResult())
		return
	}

	c.JSON(http.StatusOK, h.analyticsService.Trends(c.Request.Context(), reflections))
}

// Statistics handles POST /api/v1/analytics/statistics
func (h *AnalyticsHandler) Statistics(c *gin.Context) {
	var values []float64
	if err := c.ShouldBindJSON(&values); err != nil || len(values) == 0 {
		logDegraded(c, "statistics", err)
		c.JSON(http.StatusOK, models.EmptyStatisticsResult())
		return
	}

	c.JSON(http.StatusOK, h.analyticsService.Statistics(c.Request.Context(), values))
}

// logDegraded records that a request fell back to the hollow default.
// The response stays 200 regardless; this is the only trace.
func logDegraded(c *gin.Context, operation string, err error) {
	l := logger.Ctx(c.Request.Context()).With(logger.String("operation", operation))
	if err != nil {
		l.Warn("analytics input did not decode, returning default result", logger.Err(err))
		return
	}
	l.Debug("analytics input empty, returning default result")
}
