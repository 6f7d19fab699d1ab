package services

import (
	"time"
)

// ParseDate parses a date string in typical formats (YYYY-MM-DD)
// It enforces strict checks but centralizes the logic for future format additions
func ParseDate(dateStr string) (time.Time, error) {
	// Primary format: ISO 8601 (standard for HTML5 date inputs)
	layout := "2006-01-02"

	parsedTime, err := time.Parse(layout, dateStr)
	if err != nil {
		return time.Time{}, NewValidationError("date", "invalid date format: expected YYYY-MM-DD")
	}

	return parsedTime, nil
}

// CombineDateTime parses separate date (YYYY-MM-DD) and time (HH:MM)
// strings and returns the instant in the given location. Hearing and
// task forms submit the two fields separately; combining them here with
// the deployment timezone keeps midnight-boundary comparisons honest.
func CombineDateTime(dateStr, timeStr string, loc *time.Location) (time.Time, error) {
	combined, err := time.ParseInLocation("2006-01-02 15:04", dateStr+" "+timeStr, loc)
	if err != nil {
		return time.Time{}, NewValidationError("date", "invalid date/time: expected YYYY-MM-DD and HH:MM")
	}
	return combined, nil
}

// DayBounds returns the start of the calendar day containing t in loc,
// and the start of the following day. List filters like "hearings today"
// use [start, end) ranges built from these.
func DayBounds(t time.Time, loc *time.Location) (time.Time, time.Time) {
	y, m, d := t.In(loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}
