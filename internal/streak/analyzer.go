package streak

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Source is the read-only view of completion data the analyzer needs.
// Implementations return already-persisted events in any order.
type Source interface {
	// HabitEvents returns the events of the named habit. An unknown habit is
	// an error; a known habit with no completions is an empty slice.
	HabitEvents(name string) ([]Event, error)
	// AllEvents returns the events of every habit.
	AllEvents() ([]Event, error)
}

// Result is one habit's longest streak.
type Result struct {
	Name    string
	Longest int
}

// maxConcurrent bounds the goroutines LongestStreaks runs against the Source.
const maxConcurrent = 4

// Analyzer answers streak questions against a Source snapshot.
type Analyzer struct {
	src Source
}

// NewAnalyzer creates an analyzer reading from src.
func NewAnalyzer(src Source) *Analyzer {
	return &Analyzer{src: src}
}

// LongestStreak returns the longest streak of the named habit in days.
// Store errors, including an unknown habit, are returned wrapped with a zero result.
func (a *Analyzer) LongestStreak(name string) (int, error) {
	events, err := a.src.HabitEvents(name)
	if err != nil {
		return 0, fmt.Errorf("fetching events for %q: %w", name, err)
	}
	return ForHabit(events), nil
}

// LongestStreakAll returns the longest streak across all habits in days.
func (a *Analyzer) LongestStreakAll() (int, error) {
	events, err := a.src.AllEvents()
	if err != nil {
		return 0, fmt.Errorf("fetching events: %w", err)
	}
	return LongestAll(events), nil
}

// LongestStreaks computes the longest streak of each named habit concurrently.
// Results keep the order of names. The first failure cancels the rest.
func (a *Analyzer) LongestStreaks(ctx context.Context, names []string) ([]Result, error) {
	results := make([]Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrent)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			n, err := a.LongestStreak(name)
			if err != nil {
				return err
			}
			results[i] = Result{Name: name, Longest: n}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
