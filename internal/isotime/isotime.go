// Package isotime formats and parses the ISO-8601 timestamps stored in the
// state and history files.
//
// Timestamps are written without a UTC offset in local time with a fixed
// six-digit fraction, so that comparing two written values as strings
// orders them chronologically.
package isotime

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout is the layout used for every timestamp written to disk.
const Layout = "2006-01-02T15:04:05.000000"

// ErrInvalidTimestamp is returned when a stored timestamp cannot be parsed.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// readLayouts are tried in order when parsing. Offset-less layouts are
// interpreted in local time.
var readLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
}

// Format renders t in local time using Layout.
func Format(t time.Time) string {
	return t.Local().Format(Layout)
}

// Parse reads a timestamp written by Format, by older releases without
// fractional seconds, or any RFC 3339 value carrying an explicit offset.
func Parse(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidTimestamp)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.Local(), nil
	}

	for _, layout := range readLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, s)
}
