package analytics

import (
	"strconv"
	"strings"
)

// dateTime holds the calendar fields extracted from a reflection
// timestamp. Field ranges are not validated; out-of-range values from
// malformed-but-parseable input propagate to the bucketing layer.
type dateTime struct {
	year    int
	month   int
	day     int
	hour    int
	minute  int
	weekday int // 0 = Sunday .. 6 = Saturday
}

// parseTimestamp parses the restricted ISO-8601 shape
// "YYYY-MM-DDTHH:MM:SS[.fff]Z". Fractional seconds and the trailing Z
// are optional; the literal T separator and colon-delimited time are
// not. Returns false for anything it cannot take apart.
func parseTimestamp(ts string) (dateTime, bool) {
	parts := strings.Split(ts, "T")
	if len(parts) != 2 {
		return dateTime{}, false
	}

	dateParts := strings.Split(parts[0], "-")
	if len(dateParts) != 3 {
		return dateTime{}, false
	}

	year, err := strconv.Atoi(dateParts[0])
	if err != nil {
		return dateTime{}, false
	}
	month, err := strconv.ParseUint(dateParts[1], 10, 32)
	if err != nil {
		return dateTime{}, false
	}
	day, err := strconv.ParseUint(dateParts[2], 10, 32)
	if err != nil {
		return dateTime{}, false
	}

	timePart := strings.TrimSuffix(parts[1], "Z")
	timeParts := strings.Split(timePart, ":")
	if len(timeParts) < 2 {
		return dateTime{}, false
	}

	hour, err := strconv.ParseUint(timeParts[0], 10, 32)
	if err != nil {
		return dateTime{}, false
	}
	minute, err := strconv.ParseUint(timeParts[1], 10, 32)
	if err != nil {
		return dateTime{}, false
	}

	return dateTime{
		year:    year,
		month:   int(month),
		day:     int(day),
		hour:    int(hour),
		minute:  int(minute),
		weekday: calculateWeekday(year, int(month), int(day)),
	}, true
}

// calculateWeekday applies Zeller's congruence, treating January and
// February as months 13 and 14 of the previous year, then remaps from
// Zeller's 0=Saturday to 0=Sunday.
func calculateWeekday(year, month, day int) int {
	y := year
	m := month
	if m < 3 {
		m += 12
		y--
	}
	k := y % 100
	j := y / 100
	h := (day + (13*(m+1))/5 + k + k/4 + j/4 - 2*j) % 7
	return (h + 6) % 7
}
