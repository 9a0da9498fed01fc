package analytics

import (
	"sort"

	"github.com/reflectlog/backend/internal/models"
)

// emotionTally accumulates per-emotion occurrence counts within one
// bucket, remembering the display name first seen for each identifier.
type emotionTally map[string]*emotionEntry

type emotionEntry struct {
	name  string
	count int
}

func (t emotionTally) add(emotionID, emotionName string) {
	if e, ok := t[emotionID]; ok {
		e.count++
		return
	}
	t[emotionID] = &emotionEntry{name: emotionName, count: 1}
}

// ranked returns the tally as EmotionCount entries sorted by count
// descending. Equal counts order lexicographically by identifier so
// repeated runs over the same input produce identical output.
func (t emotionTally) ranked() []models.EmotionCount {
	out := make([]models.EmotionCount, 0, len(t))
	for id, e := range t {
		out = append(out, models.EmotionCount{
			EmotionID:   id,
			EmotionName: e.name,
			Count:       e.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].EmotionID < out[j].EmotionID
		}
		return out[i].Count > out[j].Count
	})
	return out
}

// top returns at most limit entries of the ranked tally.
func (t emotionTally) top(limit int) []models.EmotionCount {
	ranked := t.ranked()
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// leading returns the single highest-count emotion, or nil for an
// empty tally.
func (t emotionTally) leading() *models.EmotionCount {
	ranked := t.ranked()
	if len(ranked) == 0 {
		return nil
	}
	return &ranked[0]
}

// primaryEmotion resolves a reflection's primary emotion identifier and
// display name, substituting the literal placeholders when absent.
func primaryEmotion(r models.Reflection) (string, string) {
	id, name := "unknown", "Unknown"
	if r.EmotionID != nil {
		id = *r.EmotionID
	}
	if r.EmotionName != nil {
		name = *r.EmotionName
	}
	return id, name
}

// averageOf returns the arithmetic mean of the collected intensities,
// or nil when none were present.
func averageOf(intensities []float64) *float64 {
	if len(intensities) == 0 {
		return nil
	}
	sum := 0.0
	for _, v := range intensities {
		sum += v
	}
	avg := sum / float64(len(intensities))
	return &avg
}
