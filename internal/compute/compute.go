// Package compute is the encoded-text boundary around the analytics
// engine, mirroring the embedding surface the host application calls:
// JSON in, JSON out, never an error. Decode failure, empty input and
// encode failure all collapse to a hollow default result, trading
// precision for availability.
package compute

import (
	json "github.com/goccy/go-json"

	"github.com/reflectlog/backend/internal/analytics"
	"github.com/reflectlog/backend/internal/models"
)

// Hollow defaults, pre-encoded. These match what the empty result
// structures would encode to.
const (
	emptyTimePatternsJSON = `{"dayOfWeek":[],"timeOfDay":[],"month":[]}`
	emptyCoOccurrenceJSON = `[]`
	emptyTrendsJSON       = `{"daily":[],"weekly":[],"monthly":[]}`
	emptyStatisticsJSON   = `{"mean":0,"median":0,"min":0,"max":0,"percentiles":{}}`
)

// decodeReflections resolves the Ok/Fallback split for reflection
// input: ok is false when the payload does not decode or decodes to an
// empty list, and callers answer with the hollow default.
func decodeReflections(encoded string) ([]models.Reflection, bool) {
	var reflections []models.Reflection
	if err := json.Unmarshal([]byte(encoded), &reflections); err != nil {
		return nil, false
	}
	if len(reflections) == 0 {
		return nil, false
	}
	return reflections, true
}

func decodeValues(encoded string) ([]float64, bool) {
	var values []float64
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return nil, false
	}
	if len(values) == 0 {
		return nil, false
	}
	return values, true
}

func encodeOr(v any, fallback string) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fallback
	}
	return string(data)
}

// CalculateTimePatterns computes day-of-week, time-of-day and month
// distributions over an encoded reflection list.
func CalculateTimePatterns(reflectionsJSON string) string {
	reflections, ok := decodeReflections(reflectionsJSON)
	if !ok {
		return emptyTimePatternsJSON
	}
	return encodeOr(analytics.ComputeTimePatterns(reflections), emptyTimePatternsJSON)
}

// CalculateCoOccurrence computes the top emotion pairs over an encoded
// reflection list.
func CalculateCoOccurrence(reflectionsJSON string) string {
	reflections, ok := decodeReflections(reflectionsJSON)
	if !ok {
		return emptyCoOccurrenceJSON
	}
	return encodeOr(analytics.ComputeCoOccurrence(reflections), emptyCoOccurrenceJSON)
}

// CalculateTrends computes daily, weekly and monthly series over an
// encoded reflection list.
func CalculateTrends(reflectionsJSON string) string {
	reflections, ok := decodeReflections(reflectionsJSON)
	if !ok {
		return emptyTrendsJSON
	}
	return encodeOr(analytics.ComputeTrends(reflections), emptyTrendsJSON)
}

// CalculateStatistics computes descriptive statistics over an encoded
// number array.
func CalculateStatistics(valuesJSON string) string {
	values, ok := decodeValues(valuesJSON)
	if !ok {
		return emptyStatisticsJSON
	}
	return encodeOr(analytics.ComputeStatistics(values), emptyStatisticsJSON)
}
