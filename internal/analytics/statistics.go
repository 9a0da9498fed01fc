package analytics

import (
	"fmt"
	"math"
	"sort"

	"github.com/reflectlog/backend/internal/models"
)

// percentileRanks are the fixed percentiles reported by
// ComputeStatistics, keyed as "p10".."p99" in the result.
var percentileRanks = [7]int{10, 25, 50, 75, 90, 95, 99}

// ComputeStatistics computes mean, median, min, max and nearest-rank
// percentiles over values. An empty input yields the zeroed result.
// Non-finite values are tolerated: the plain < comparison treats NaN as
// equal to everything, so sorting never panics.
func ComputeStatistics(values []float64) *models.StatisticsResult {
	if len(values) == 0 {
		return models.EmptyStatisticsResult()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	sum := 0.0
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))

	n := len(sorted)
	var median float64
	if n%2 == 0 {
		median = (sorted[n/2-1] + sorted[n/2]) / 2.0
	} else {
		median = sorted[n/2]
	}

	percentiles := make(map[string]float64, len(percentileRanks))
	for _, p := range percentileRanks {
		index := int(math.Round(float64(p) / 100.0 * float64(n-1)))
		if index > n-1 {
			index = n - 1
		}
		percentiles[fmt.Sprintf("p%d", p)] = sorted[index]
	}

	return &models.StatisticsResult{
		Mean:        mean,
		Median:      median,
		Min:         sorted[0],
		Max:         sorted[n-1],
		Percentiles: percentiles,
	}
}
