package analytics

import (
	"sort"
	"testing"

	"github.com/reflectlog/backend/internal/models"
)

func TestComputeTrendsDailyKeys(t *testing.T) {
	reflections := []models.Reflection{
		reflection("2024-01-16T09:00:00Z", "calm", "Calm", nil),
		reflection("2024-01-15T10:00:00Z", "joy", "Joy", nil),
		reflection("2024-01-15T20:00:00Z", "joy", "Joy", nil),
	}

	result := ComputeTrends(reflections)

	if len(result.Daily) != 2 {
		t.Fatalf("expected 2 daily points, got %d", len(result.Daily))
	}
	if result.Daily[0].Date != "2024-01-15" || result.Daily[0].Count != 2 {
		t.Errorf("daily[0] = %q/%d, want 2024-01-15/2", result.Daily[0].Date, result.Daily[0].Count)
	}
	if result.Daily[1].Date != "2024-01-16" || result.Daily[1].Count != 1 {
		t.Errorf("daily[1] = %q/%d, want 2024-01-16/1", result.Daily[1].Date, result.Daily[1].Count)
	}
}

func TestComputeTrendsSeriesSortedAscending(t *testing.T) {
	reflections := []models.Reflection{
		reflection("2024-03-01T10:00:00Z", "joy", "Joy", nil),
		reflection("2023-11-20T10:00:00Z", "joy", "Joy", nil),
		reflection("2024-01-05T10:00:00Z", "joy", "Joy", nil),
		reflection("2024-12-31T10:00:00Z", "joy", "Joy", nil),
	}

	result := ComputeTrends(reflections)

	for name, series := range map[string][]models.TrendDataPoint{
		"daily":   result.Daily,
		"weekly":  result.Weekly,
		"monthly": result.Monthly,
	} {
		if !sort.SliceIsSorted(series, func(i, j int) bool {
			return series[i].Date < series[j].Date
		}) {
			t.Errorf("%s series not sorted ascending: %+v", name, series)
		}
	}
}

func TestComputeTrendsTopEmotion(t *testing.T) {
	reflections := []models.Reflection{
		reflection("2024-01-15T10:00:00Z", "joy", "Joy", nil),
		reflection("2024-01-15T11:00:00Z", "joy", "Joy", nil),
		reflection("2024-01-15T12:00:00Z", "calm", "Calm", nil),
	}

	result := ComputeTrends(reflections)

	if len(result.Daily) != 1 {
		t.Fatalf("expected 1 daily point, got %d", len(result.Daily))
	}
	top := result.Daily[0].TopEmotion
	if top == nil {
		t.Fatal("expected a top emotion")
	}
	if top.EmotionID != "joy" || top.Count != 2 {
		t.Errorf("topEmotion = %q/%d, want joy/2", top.EmotionID, top.Count)
	}
}

func TestComputeTrendsCountsMatchParseable(t *testing.T) {
	reflections := []models.Reflection{
		reflection("2024-01-15T10:00:00Z", "joy", "Joy", nil),
		reflection("2024-02-20T10:00:00Z", "calm", "Calm", nil),
		reflection("garbage", "joy", "Joy", nil),
	}
	const parseable = 2

	result := ComputeTrends(reflections)

	for name, series := range map[string][]models.TrendDataPoint{
		"daily":   result.Daily,
		"weekly":  result.Weekly,
		"monthly": result.Monthly,
	} {
		total := 0
		for _, p := range series {
			total += p.Count
		}
		if total != parseable {
			t.Errorf("%s counts sum to %d, want %d", name, total, parseable)
		}
	}
}

func TestWeekKey(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             string
	}{
		{"first day of year", 2024, 1, 1, "2024-W01"},
		{"day seven rounds into week one", 2024, 1, 7, "2024-W01"},
		{"day eight starts week two", 2024, 1, 8, "2024-W02"},
		{"mid january", 2024, 1, 15, "2024-W03"},
		{"leap year after february", 2024, 3, 1, "2024-W09"},
		{"non-leap year after february", 2023, 3, 1, "2023-W09"},
		{"century non-leap", 1900, 3, 1, "1900-W09"},
		{"quadricentennial leap", 2000, 3, 1, "2000-W09"},
		{"end of leap year", 2024, 12, 31, "2024-W53"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := weekKey(tt.year, tt.month, tt.day); got != tt.want {
				t.Errorf("weekKey(%d, %d, %d) = %q, want %q", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestComputeTrendsMonthlyKeys(t *testing.T) {
	reflections := []models.Reflection{
		reflection("2024-01-15T10:00:00Z", "joy", "Joy", floatPtr(5)),
		reflection("2024-01-20T10:00:00Z", "joy", "Joy", floatPtr(7)),
	}

	result := ComputeTrends(reflections)

	if len(result.Monthly) != 1 {
		t.Fatalf("expected 1 monthly point, got %d", len(result.Monthly))
	}
	m := result.Monthly[0]
	if m.Date != "2024-01" {
		t.Errorf("monthly key = %q, want 2024-01", m.Date)
	}
	if m.AverageIntensity == nil || *m.AverageIntensity != 6 {
		t.Errorf("averageIntensity = %v, want 6", m.AverageIntensity)
	}
}
