package timer

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ZeroDuration is reported when no fast is active.
const ZeroDuration = "00:00:00"

// ErrInvalidFormat is returned by ParseBackdate for input that is not HH:MM.
var ErrInvalidFormat = errors.New("invalid duration format, use 'HH:MM'")

// FormatDuration renders d as HH:MM:SS. Sub-second precision is dropped,
// never rounded. Hours are not wrapped into days. Negative values render
// as ZeroDuration.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// ParseBackdate parses an "HH:MM" string into a duration. Both fields must
// be integers; their range is not checked.
func ParseBackdate(s string) (time.Duration, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute, nil
}
