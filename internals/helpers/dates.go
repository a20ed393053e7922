package helper

import (
	"fmt"
	"strings"
	"time"
)

/* ===============================
   Calendar-day helpers

   Day-only values are always stored as the UTC midnight instant of that
   calendar day, everywhere. Ranges are half-open: [day, next day).
=================================*/

const layoutDay = "2006-01-02"

// ParseDayUTC parses "YYYY-MM-DD" into the UTC midnight instant of that day.
func ParseDayUTC(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	t, err := time.Parse(layoutDay, s)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

// DayRangeUTC returns [UTC midnight of day, UTC midnight of next day).
func DayRangeUTC(s string) (time.Time, time.Time, error) {
	start, err := ParseDayUTC(s)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.AddDate(0, 0, 1), nil
}

// ParseDateFlexible accepts either a full RFC3339 timestamp or a bare
// "YYYY-MM-DD" day. Forms may send either.
func ParseDateFlexible(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return ParseDayUTC(s)
}

// FormatDayUTC renders an instant as its UTC calendar day.
func FormatDayUTC(t time.Time) string {
	return t.UTC().Format(layoutDay)
}
