package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/reflectlog/backend/internal/models"
)

var daysInMonth = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// ComputeTrends buckets reflections into daily, weekly and monthly
// series. Accumulation matches ComputeTimePatterns, but each data point
// carries only the single highest-count emotion.
func ComputeTrends(reflections []models.Reflection) *models.TrendsResult {
	daily := patternMap{}
	weekly := patternMap{}
	monthly := patternMap{}

	for _, r := range reflections {
		ts, ok := parseTimestamp(r.Timestamp)
		if !ok {
			continue
		}

		daily.record(fmt.Sprintf("%04d-%02d-%02d", ts.year, ts.month, ts.day), r)
		weekly.record(weekKey(ts.year, ts.month, ts.day), r)
		monthly.record(fmt.Sprintf("%04d-%02d", ts.year, ts.month), r)
	}

	return &models.TrendsResult{
		Daily:   formatTrends(daily),
		Weekly:  formatTrends(weekly),
		Monthly: formatTrends(monthly),
	}
}

// formatTrends materialises buckets into data points sorted ascending
// by period label. Lexicographic order coincides with chronological
// order for YYYY-MM-DD and YYYY-MM labels; for week labels it holds
// only within a single year (see weekKey).
func formatTrends(m patternMap) []models.TrendDataPoint {
	trends := make([]models.TrendDataPoint, 0, len(m))
	for period, b := range m {
		trends = append(trends, models.TrendDataPoint{
			Date:             period,
			Count:            b.count,
			AverageIntensity: averageOf(b.intensities),
			TopEmotion:       b.emotions.leading(),
		})
	}

	sort.Slice(trends, func(i, j int) bool {
		return trends[i].Date < trends[j].Date
	})

	return trends
}

// weekKey derives the "YYYY-Www" label, week = ceil(dayOfYear / 7).
// This is not ISO 8601 week numbering; the format is kept for
// compatibility with existing stored results even though its string
// ordering breaks across year boundaries.
func weekKey(year, month, day int) string {
	dayOfYear := day
	for i := 0; i < month-1 && i < len(daysInMonth); i++ {
		dayOfYear += daysInMonth[i]
	}

	isLeap := (year%4 == 0 && year%100 != 0) || year%400 == 0
	if isLeap && month > 2 {
		dayOfYear++
	}

	week := int(math.Ceil(float64(dayOfYear) / 7.0))
	return fmt.Sprintf("%04d-W%02d", year, week)
}
