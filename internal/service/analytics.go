package service

import (
	"context"
	"time"

	"github.com/reflectlog/backend/internal/analytics"
	"github.com/reflectlog/backend/internal/logger"
	"github.com/reflectlog/backend/internal/models"
)

type analyticsService struct{}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService() AnalyticsService {
	return &analyticsService{}
}

func (s *analyticsService) TimePatterns(ctx context.Context, reflections []models.Reflection) *models.TimePatternsResult {
	start := time.Now()
	result := analytics.ComputeTimePatterns(reflections)
	logger.Ctx(ctx).Debug("computed time patterns",
		logger.Int("reflections", len(reflections)),
		logger.Int("day_of_week_buckets", len(result.DayOfWeek)),
		logger.Duration("elapsed", time.Since(start)),
	)
	return result
}

func (s *analyticsService) CoOccurrence(ctx context.Context, reflections []models.Reflection) []models.CoOccurrence {
	start := time.Now()
	result := analytics.ComputeCoOccurrence(reflections)
	logger.Ctx(ctx).Debug("computed co-occurrence",
		logger.Int("reflections", len(reflections)),
		logger.Int("pairs", len(result)),
		logger.Duration("elapsed", time.Since(start)),
	)
	return result
}

func (s *analyticsService) Trends(ctx context.Context, reflections []models.Reflection) *models.TrendsResult {
	start := time.Now()
	result := analytics.ComputeTrends(reflections)
	logger.Ctx(ctx).Debug("computed trends",
		logger.Int("reflections", len(reflections)),
		logger.Int("daily_points", len(result.Daily)),
		logger.Duration("elapsed", time.Since(start)),
	)
	return result
}

func (s *analyticsService) Statistics(ctx context.Context, values []float64) *models.StatisticsResult {
	start := time.Now()
	result := analytics.ComputeStatistics(values)
	logger.Ctx(ctx).Debug("computed statistics",
		logger.Int("values", len(values)),
		logger.Duration("elapsed", time.Since(start)),
	)
	return result
}
