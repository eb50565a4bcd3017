// Package timepoint converts between the hub's compact UTC timestamp token
// (YYYYMMDDTHHMMSSZ), form date/time fields, and display strings.
package timepoint

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Layout is the TimePoint token layout. It is also the iCalendar UTC
// date-time form and the Google Calendar "dates" form.
const Layout = "20060102T150405Z"

// Length is the fixed width of every token.
const Length = len(Layout)

var (
	ErrMalformedTimestamp = errors.New("malformed timestamp")
	ErrInvalidField       = errors.New("invalid date or time field")
)

var tokenPattern = regexp.MustCompile(`^\d{4}\d{2}\d{2}T\d{2}\d{2}\d{2}Z$`)

// Parse turns a token into a UTC instant. Tokens of the wrong shape, or
// naming a day or clock time that does not exist, fail with ErrMalformedTimestamp.
func Parse(token string) (time.Time, error) {
	if !tokenPattern.MatchString(token) {
		return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedTimestamp, token)
	}
	t, err := time.Parse(Layout, token)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrMalformedTimestamp, token, err)
	}
	return t, nil
}

// Format encodes t as a token. Sub-second precision is dropped.
func Format(t time.Time) string {
	return t.UTC().Format(Layout)
}

// FormatForCalendarExport encodes t for DTSTART/DTEND and Google Calendar links.
func FormatForCalendarExport(t time.Time) string {
	return Format(t)
}

// ParseRange parses a start/end token pair.
func ParseRange(startToken, endToken string) (start, end time.Time, err error) {
	if start, err = Parse(startToken); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("start: %w", err)
	}
	if end, err = Parse(endToken); err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("end: %w", err)
	}
	return start, end, nil
}
