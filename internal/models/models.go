package models

// Reflection represents one logged emotional event as supplied by the
// host application. Inputs are never mutated by the analytics engine.
type Reflection struct {
	Timestamp        string    `json:"timestamp"`
	EmotionID        *string   `json:"emotionId,omitempty"`
	EmotionName      *string   `json:"emotionName,omitempty"`
	Intensity        *float64  `json:"intensity,omitempty"`
	RelatedEmotions  []string  `json:"relatedEmotions,omitempty"`
	Location         *Location `json:"location,omitempty"`
	People           []Person  `json:"people,omitempty"`
	CopingStrategies []string  `json:"copingStrategies,omitempty"`
	MoodBefore       *float64  `json:"moodBefore,omitempty"`
	MoodAfter        *float64  `json:"moodAfter,omitempty"`
}

// Location is where a reflection was logged. Not consumed by the
// aggregators; carried through for hosts that round-trip records.
type Location struct {
	PlaceName *string `json:"placeName,omitempty"`
	City      *string `json:"city,omitempty"`
	Country   *string `json:"country,omitempty"`
}

// Person is someone present when a reflection was logged.
type Person struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// EmotionCount is a ranked tally entry for a single emotion.
type EmotionCount struct {
	EmotionID   string `json:"emotionId"`
	EmotionName string `json:"emotionName"`
	Count       int    `json:"count"`
}

// TimePattern summarises one bucket of a time-pattern dimension.
type TimePattern struct {
	Period           string         `json:"period"`
	Count            int            `json:"count"`
	AverageIntensity *float64       `json:"averageIntensity,omitempty"`
	TopEmotions      []EmotionCount `json:"topEmotions"`
}

// TimePatternsResult groups the three time-pattern dimensions.
type TimePatternsResult struct {
	DayOfWeek []TimePattern `json:"dayOfWeek"`
	TimeOfDay []TimePattern `json:"timeOfDay"`
	Month     []TimePattern `json:"month"`
}

// TrendDataPoint is one entry of an ordered trend series.
type TrendDataPoint struct {
	Date             string        `json:"date"`
	Count            int           `json:"count"`
	AverageIntensity *float64      `json:"averageIntensity,omitempty"`
	TopEmotion       *EmotionCount `json:"topEmotion,omitempty"`
}

// TrendsResult groups the daily, weekly and monthly trend series.
type TrendsResult struct {
	Daily   []TrendDataPoint `json:"daily"`
	Weekly  []TrendDataPoint `json:"weekly"`
	Monthly []TrendDataPoint `json:"monthly"`
}

// CoOccurrence counts how often an unordered pair of emotions appears
// together within single records.
type CoOccurrence struct {
	EmotionPair [2]string `json:"emotionPair"`
	Count       int       `json:"count"`
	Percentage  float64   `json:"percentage"`
}

// StatisticsResult holds descriptive statistics over a numeric array.
type StatisticsResult struct {
	Mean        float64            `json:"mean"`
	Median      float64            `json:"median"`
	Min         float64            `json:"min"`
	Max         float64            `json:"max"`
	Percentiles map[string]float64 `json:"percentiles"`
}

// EmptyTimePatternsResult returns the hollow default used when input is
// missing or undecodable. Slices are non-nil so they encode as [].
func EmptyTimePatternsResult() *TimePatternsResult {
	return &TimePatternsResult{
		DayOfWeek: []TimePattern{},
		TimeOfDay: []TimePattern{},
		Month:     []TimePattern{},
	}
}

// EmptyTrendsResult returns the hollow default trend series.
func EmptyTrendsResult() *TrendsResult {
	return &TrendsResult{
		Daily:   []TrendDataPoint{},
		Weekly:  []TrendDataPoint{},
		Monthly: []TrendDataPoint{},
	}
}

// EmptyCoOccurrences returns the hollow default co-occurrence list.
func EmptyCoOccurrences() []CoOccurrence {
	return []CoOccurrence{}
}

// EmptyStatisticsResult returns the zeroed statistics default with an
// empty (but non-nil) percentile map.
func EmptyStatisticsResult() *StatisticsResult {
	return &StatisticsResult{Percentiles: map[string]float64{}}
}
