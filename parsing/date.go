package parsing

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rickb777/date/v2"
)

// ErrUnrecognizedDate is returned when a value matches none of the accepted
// date forms.
var ErrUnrecognizedDate = errors.New("unrecognized date format")

var dateLayouts = []string{
	"2006-1-2", // 2025-12-17, 2025-1-5
	"2/1/2006", // 17/12/2025, 5/1/2025
	"20060102", // 20251217
}

// ParseDate accepts, in order, "YYYY-MM-DD", "DD/MM/YYYY", "YYYYMMDD" and
// finally a Unix timestamp in seconds. Month and day may drop their leading
// zero in the first two forms. Results are in the local time zone.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t, nil
		}
	}
	if isDigits(value) {
		secs, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return time.Unix(secs, 0), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrUnrecognizedDate, value)
}

// ParseCalendarDate is ParseDate reduced to a calendar date.
func ParseCalendarDate(value string) (date.Date, error) {
	t, err := ParseDate(value)
	if err != nil {
		var zero date.Date
		return zero, err
	}
	return date.New(t.Year(), t.Month(), t.Day()), nil
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
