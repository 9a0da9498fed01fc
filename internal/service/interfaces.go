package service

import (
	"context"

	"github.com/reflectlog/backend/internal/models"
)

// AnalyticsService defines the interface for reflection analytics.
// Every operation is total: malformed records degrade the result
// instead of failing it, so no errors are returned.
type AnalyticsService interface {
	TimePatterns(ctx context.Context, reflections []models.Reflection) *models.TimePatternsResult
	CoOccurrence(ctx context.Context, reflections []models.Reflection) []models.CoOccurrence
	Trends(ctx context.Context, reflections []models.Reflection) *models.TrendsResult
	Statistics(ctx context.Context, values []float64) *models.StatisticsResult
}
