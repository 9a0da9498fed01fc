package analytics

import (
	"sort"

	"github.com/reflectlog/backend/internal/models"
)

// maxCoOccurrences caps the result at the strongest pairs.
const maxCoOccurrences = 20

// ComputeCoOccurrence counts unordered pairs of emotions appearing
// together within single records. Timestamps are ignored entirely, so
// every record counts toward the percentage base. Pair keys hold the
// two identifiers in lexicographic order; duplicate identifiers within
// one record pair up like any other positions.
func ComputeCoOccurrence(reflections []models.Reflection) []models.CoOccurrence {
	counts := map[[2]string]int{}
	total := len(reflections)

	for _, r := range reflections {
		emotions := make([]string, 0, 1+len(r.RelatedEmotions))
		if r.EmotionID != nil {
			emotions = append(emotions, *r.EmotionID)
		}
		emotions = append(emotions, r.RelatedEmotions...)

		for i := 0; i < len(emotions); i++ {
			for j := i + 1; j < len(emotions); j++ {
				pair := [2]string{emotions[i], emotions[j]}
				if pair[1] < pair[0] {
					pair[0], pair[1] = pair[1], pair[0]
				}
				counts[pair]++
			}
		}
	}

	result := make([]models.CoOccurrence, 0, len(counts))
	for pair, count := range counts {
		percentage := 0.0
		if total > 0 {
			percentage = float64(count) / float64(total) * 100.0
		}
		result = append(result, models.CoOccurrence{
			EmotionPair: pair,
			Count:       count,
			Percentage:  percentage,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Count == result[j].Count {
			if result[i].EmotionPair[0] == result[j].EmotionPair[0] {
				return result[i].EmotionPair[1] < result[j].EmotionPair[1]
			}
			return result[i].EmotionPair[0] < result[j].EmotionPair[0]
		}
		return result[i].Count > result[j].Count
	})

	if len(result) > maxCoOccurrences {
		result = result[:maxCoOccurrences]
	}

	return result
}
