package analytics

import (
	"fmt"
	"sort"

	"github.com/reflectlog/backend/internal/models"
)

var dayNames = [7]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

var timeOfDayNames = [4]string{"morning", "afternoon", "evening", "night"}

// patternBucket accumulates one period's records while scanning input.
type patternBucket struct {
	count       int
	intensities []float64
	emotions    emotionTally
}

type patternMap map[string]*patternBucket

func (m patternMap) record(period string, r models.Reflection) {
	b, ok := m[period]
	if !ok {
		b = &patternBucket{emotions: emotionTally{}}
		m[period] = b
	}
	b.count++
	if r.Intensity != nil {
		b.intensities = append(b.intensities, *r.Intensity)
	}
	id, name := primaryEmotion(r)
	b.emotions.add(id, name)
}

// ComputeTimePatterns buckets reflections by day of week, time of day
// and calendar month. Records whose timestamps do not parse are
// silently skipped.
func ComputeTimePatterns(reflections []models.Reflection) *models.TimePatternsResult {
	dayOfWeek := patternMap{}
	timeOfDay := patternMap{}
	month := patternMap{}

	for _, r := range reflections {
		ts, ok := parseTimestamp(r.Timestamp)
		if !ok {
			continue
		}

		dayOfWeek.record(dayNames[ts.weekday], r)
		timeOfDay.record(timeOfDayName(ts.hour), r)
		month.record(fmt.Sprintf("%04d-%02d", ts.year, ts.month), r)
	}

	return &models.TimePatternsResult{
		DayOfWeek: formatPatterns(dayOfWeek, dayNames[:]),
		TimeOfDay: formatPatterns(timeOfDay, timeOfDayNames[:]),
		Month:     formatPatterns(month, nil),
	}
}

// timeOfDayName maps an hour to its band. Out-of-range hours from
// unvalidated timestamps land in "night".
func timeOfDayName(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "morning"
	case hour >= 12 && hour < 17:
		return "afternoon"
	case hour >= 17 && hour < 22:
		return "evening"
	default:
		return "night"
	}
}

// formatPatterns materialises buckets into TimePattern entries. With a
// canonical order the result follows it, unknown periods sorting after
// known ones and among themselves by count descending. Without one
// (months) the result sorts by count descending, period ascending on
// ties.
func formatPatterns(m patternMap, order []string) []models.TimePattern {
	patterns := make([]models.TimePattern, 0, len(m))
	for period, b := range m {
		patterns = append(patterns, models.TimePattern{
			Period:           period,
			Count:            b.count,
			AverageIntensity: averageOf(b.intensities),
			TopEmotions:      b.emotions.top(5),
		})
	}

	if len(order) > 0 {
		pos := make(map[string]int, len(order))
		for i, p := range order {
			pos[p] = i
		}
		sort.Slice(patterns, func(i, j int) bool {
			pi, iKnown := pos[patterns[i].Period]
			pj, jKnown := pos[patterns[j].Period]
			switch {
			case iKnown && jKnown:
				return pi < pj
			case iKnown:
				return true
			case jKnown:
				return false
			default:
				return patterns[i].Count > patterns[j].Count
			}
		})
	} else {
		sort.Slice(patterns, func(i, j int) bool {
			if patterns[i].Count == patterns[j].Count {
				return patterns[i].Period < patterns[j].Period
			}
			return patterns[i].Count > patterns[j].Count
		})
	}

	return patterns
}
