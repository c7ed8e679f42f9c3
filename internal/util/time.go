package util

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateFormat is the canonical day format used in responses and logs
const DateFormat = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

// layouts accepted by ParseDate, tried in order.
// "2006-1-2" also matches zero-padded ISO dates.
var layouts = []string{
	"2006-1-2",
	time.RFC3339,
	"2006-1-2 15:04:05",
	"2006-1-2T15:04:05",
	"1/2/2006",
	"02.01.2006",
}

// Day returns midnight UTC of the calendar day t falls on in its own location.
// All record and query dates go through Day so comparisons are day-granular.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day.
func Today() time.Time {
	return Day(time.Now())
}

// ParseDate parses a calendar date leniently and returns it normalized with Day.
// Accepted forms are ISO dates (zero padding optional, optionally with a time),
// RFC3339, US slash dates read month first ("01/02/2018" is January 2) and
// dotted day-first dates ("02.01.2018" is January 2).
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q want format %q", ErrInvalidDate, s, DateFormat)
}

// FormatDate formats t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
