package streak

import (
	"fmt"
	"strings"
)

// Periodicity is the expected cadence of a habit.
type Periodicity string

const (
	Daily  Periodicity = "daily"
	Weekly Periodicity = "weekly"
)

// Periodicities lists the recognized values in display order.
var Periodicities = []Periodicity{Daily, Weekly}

// ParsePeriodicity accepts "daily" or "weekly" in any case.
// Use it on user input; stored values go through IsDaily instead.
func ParsePeriodicity(s string) (Periodicity, error) {
	switch p := Periodicity(strings.ToLower(strings.TrimSpace(s))); p {
	case Daily, Weekly:
		return p, nil
	}
	return "", fmt.Errorf("invalid periodicity %q (use daily or weekly)", s)
}

// IsDaily reports whether p is the daily tag, ignoring case.
// Every other value, including unrecognized ones, gets weekly semantics.
func (p Periodicity) IsDaily() bool {
	return strings.EqualFold(string(p), string(Daily))
}

// GapThreshold is the largest day difference that keeps two consecutive
// completion dates in the same streak.
func (p Periodicity) GapThreshold() int {
	if p.IsDaily() {
		return 1
	}
	return 7
}

// DayFactor converts a run of qualifying dates into day-equivalent units.
func (p Periodicity) DayFactor() int {
	if p.IsDaily() {
		return 1
	}
	return 7
}

func (p Periodicity) String() string {
	return string(p)
}
