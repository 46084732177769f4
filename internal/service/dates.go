package service

import (
	"errors"
	"time"
)

// ErrInvalidDate is returned when a date field is not a yyyy-mm-dd value
var ErrInvalidDate = errors.New("invalid date, expected yyyy-mm-dd")

const dateLayout = "2006-01-02"

// parseDate parses an optional yyyy-mm-dd date, defaulting to today
// when the input is empty
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
