// Package streak computes longest-streak statistics over habit completions.
//
// Everything here is a pure function of its input. Callers fetch events from a
// Source (usually the habit store) and the engine normalizes them to calendar
// dates before scanning, so ordering and same-day duplicates in the input do
// not matter.
package streak

import (
	"slices"
	"time"
)

// Event is a single completion as seen by the engine.
type Event struct {
	At          time.Time
	Periodicity Periodicity
}

// Normalize reduces timestamps to their distinct calendar dates in ascending
// order. The date is taken from each timestamp's own wall clock and returned
// as midnight UTC, so the difference between two results is a whole number of days.
func Normalize(times []time.Time) []time.Time {
	if len(times) == 0 {
		return nil
	}

	seen := make(map[time.Time]struct{}, len(times))
	dates := make([]time.Time, 0, len(times))
	for _, t := range times {
		d := dateOf(t)
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(a, b time.Time) int { return a.Compare(b) })
	return dates
}

// Longest returns the longest streak in day-equivalent units for dates, which
// must be ascending and free of duplicates (the output of Normalize).
//
// Two consecutive dates belong to the same streak when they are at most
// p.GapThreshold() days apart. A run of N dates counts N, times 7 unless p is daily.
func Longest(dates []time.Time, p Periodicity) int {
	if len(dates) == 0 {
		return 0
	}

	gap := p.GapThreshold()
	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if daysBetween(dates[i-1], dates[i]) <= gap {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return longest * p.DayFactor()
}

// ForHabit computes the longest streak of a single habit's events. All events
// of a habit share its periodicity, so the first event's tag is used.
func ForHabit(events []Event) int {
	if len(events) == 0 {
		return 0
	}
	return Longest(Normalize(timesOf(events)), events[0].Periodicity)
}

// LongestAll pools every event into a daily and a non-daily pool, regardless
// of which habit it came from, and returns the larger of the two pool streaks.
// Completions of different habits on the same day count once per pool.
func LongestAll(events []Event) int {
	var daily, weekly []time.Time
	for _, e := range events {
		if e.Periodicity.IsDaily() {
			daily = append(daily, e.At)
		} else {
			weekly = append(weekly, e.At)
		}
	}
	return max(
		Longest(Normalize(daily), Daily),
		Longest(Normalize(weekly), Weekly),
	)
}

func timesOf(events []Event) []time.Time {
	times := make([]time.Time, len(events))
	for i, e := range events {
		times[i] = e.At
	}
	return times
}

func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// daysBetween assumes both values came from dateOf.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a).Hours() / 24)
}
