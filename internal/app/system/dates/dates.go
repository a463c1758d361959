// Package dates parses the timestamp inputs accepted by the announcements
// API and renders stored timestamps back out.
//
// Callers may send either a full ISO-8601 date-time ("2026-01-15T10:30:00",
// with or without a zone offset) or a bare calendar date ("2026-01-15"),
// which is interpreted as midnight UTC that day. A single parse function
// tries the richer layouts first and fails only when none match.
package dates

import (
	"errors"
	"time"
)

// ErrUnparseable is returned when an input matches none of the accepted
// layouts.
var ErrUnparseable = errors.New("dates: value is not an ISO-8601 date-time or YYYY-MM-DD date")

// layouts ordered from most to least specific. Offset-less layouts are
// interpreted as UTC.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// Parse converts an ISO-8601 date-time or bare date string to a time.
// A bare date becomes midnight UTC on that day.
func Parse(s string) (time.Time, error) {
	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrUnparseable
}

// Format renders a stored timestamp as an RFC 3339 UTC string.
func Format(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// FormatPtr renders an optional timestamp, passing nil through as nil so
// JSON views can carry an explicit null.
func FormatPtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := Format(*t)
	return &s
}
