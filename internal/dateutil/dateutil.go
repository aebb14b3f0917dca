// Package dateutil parses the timestamp formats accepted in document frontmatter.
package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidDate indicates a frontmatter value that is not a recognizable timestamp.
var ErrInvalidDate = errors.New("invalid date")

// MaxDateLength limits input length to prevent abuse.
const MaxDateLength = 64

// layouts lists accepted timestamp layouts, most specific first.
// Values without a zone are interpreted as UTC so builds are reproducible
// regardless of the machine's local zone.
var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
	"Jan 2 2006",
	"Jan 2, 2006",
	"January 2 2006",
	"January 2, 2006",
}

// ParseTimestamp converts a frontmatter date string to a time.Time.
// Leading and trailing whitespace is ignored.
// Returns ErrInvalidDate if the value is empty, too long, or matches no layout.
func ParseTimestamp(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty value", ErrInvalidDate)
	}
	if len(value) > MaxDateLength {
		return time.Time{}, fmt.Errorf("%w: value exceeds %d characters", ErrInvalidDate, MaxDateLength)
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}

// FormatISODate renders t as YYYY-MM-DD in UTC.
func FormatISODate(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
