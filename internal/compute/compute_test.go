package compute

import (
	"testing"

	json "github.com/goccy/go-json"

	"github.com/reflectlog/backend/internal/models"
)

const sampleReflections = `[
	{"timestamp":"2024-01-15T10:00:00Z","emotionId":"joy","emotionName":"Joy","intensity":7,"relatedEmotions":["excitement"]},
	{"timestamp":"2024-01-16T20:00:00Z","emotionId":"calm","emotionName":"Calm"}
]`

func TestCalculateTimePatterns(t *testing.T) {
	out := CalculateTimePatterns(sampleReflections)

	var result models.TimePatternsResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(result.DayOfWeek) != 2 {
		t.Errorf("expected 2 day-of-week buckets, got %d", len(result.DayOfWeek))
	}
	if result.DayOfWeek[0].Period != "monday" {
		t.Errorf("first bucket = %q, want monday", result.DayOfWeek[0].Period)
	}
}

func TestCalculateTimePatternsFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed JSON", `{"not":"a list"`},
		{"wrong shape", `{"timestamp":"x"}`},
		{"empty list", `[]`},
		{"empty string", ``},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := CalculateTimePatterns(tt.input); out != emptyTimePatternsJSON {
				t.Errorf("got %q, want hollow default", out)
			}
		})
	}
}

func TestCalculateCoOccurrence(t *testing.T) {
	out := CalculateCoOccurrence(sampleReflections)

	var result []models.CoOccurrence
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(result) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(result))
	}
	if result[0].EmotionPair != [2]string{"excitement", "joy"} {
		t.Errorf("pair = %v, want [excitement joy]", result[0].EmotionPair)
	}
	if result[0].Percentage != 50 {
		t.Errorf("percentage = %v, want 50", result[0].Percentage)
	}
}

func TestCalculateCoOccurrenceFallback(t *testing.T) {
	if out := CalculateCoOccurrence(`not json`); out != emptyCoOccurrenceJSON {
		t.Errorf("got %q, want %q", out, emptyCoOccurrenceJSON)
	}
	if out := CalculateCoOccurrence(`[]`); out != emptyCoOccurrenceJSON {
		t.Errorf("got %q, want %q", out, emptyCoOccurrenceJSON)
	}
}

func TestCalculateTrends(t *testing.T) {
	out := CalculateTrends(sampleReflections)

	var result models.TrendsResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if len(result.Daily) != 2 || len(result.Monthly) != 1 {
		t.Errorf("unexpected series sizes: daily=%d monthly=%d", len(result.Daily), len(result.Monthly))
	}
}

func TestCalculateTrendsFallback(t *testing.T) {
	if out := CalculateTrends(`[1,2,3]`); out != emptyTrendsJSON {
		t.Errorf("got %q, want hollow default", out)
	}
}

func TestCalculateStatistics(t *testing.T) {
	out := CalculateStatistics(`[1,2,3,4,5]`)

	var result models.StatisticsResult
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if result.Mean != 3 || result.Median != 3 || result.Min != 1 || result.Max != 5 {
		t.Errorf("unexpected metrics: %+v", result)
	}
	if result.Percentiles["p50"] != 3 {
		t.Errorf("p50 = %v, want 3", result.Percentiles["p50"])
	}
}

func TestCalculateStatisticsFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"malformed", `[1,2,`},
		{"strings", `["a","b"]`},
		{"empty", `[]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := CalculateStatistics(tt.input); out != emptyStatisticsJSON {
				t.Errorf("got %q, want hollow default", out)
			}
		})
	}
}

func TestCalculateIdempotent(t *testing.T) {
	first := CalculateTimePatterns(sampleReflections)
	for i := 0; i < 10; i++ {
		if out := CalculateTimePatterns(sampleReflections); out != first {
			t.Fatalf("run %d differs:\n%s\nvs\n%s", i, out, first)
		}
	}
}
