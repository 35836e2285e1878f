package habit

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// StampLayout is how completion and creation times are written to the database.
const StampLayout = "2006-01-02 15:04:05"

// LegacyStampLayout is the day-first layout used by older databases and the
// example dataset.
const LegacyStampLayout = "02/01/2006 15:04:05"

// DateLayout is accepted wherever a bare date is enough.
const DateLayout = "2006-01-02"

// ErrMalformedStamp is returned for timestamps in none of the accepted layouts.
var ErrMalformedStamp = errors.New("malformed timestamp")

var stampLayouts = []string{StampLayout, LegacyStampLayout, DateLayout, time.RFC3339}

// FormatStamp renders t for storage using its own wall clock.
func FormatStamp(t time.Time) string {
	return t.Format(StampLayout)
}

// ParseStamp parses a stored or user-supplied timestamp. The wall clock is
// kept as written, so the calendar date is the one the user saw when
// recording it.
func ParseStamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range stampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrMalformedStamp, s)
}
