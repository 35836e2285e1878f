package streak

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errNoHabit = errors.New("no such habit")

type fakeSource struct {
	habits map[string][]Event
	fail   error
}

func (f *fakeSource) HabitEvents(name string) ([]Event, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	evs, ok := f.habits[name]
	if !ok {
		return nil, errNoHabit
	}
	return evs, nil
}

func (f *fakeSource) AllEvents() ([]Event, error) {
	if f.fail != nil {
		return nil, f.fail
	}
	var all []Event
	for _, evs := range f.habits {
		all = append(all, evs...)
	}
	return all, nil
}

func newFake() *fakeSource {
	return &fakeSource{habits: map[string][]Event{
		"guitar":   events(Daily, daysAgo(6, 5, 4)),
		"bed":      events(Daily, daysAgo(2, 1)),
		"cleaning": events(Weekly, daysAgo(30)),
		"empty":    nil,
	}}
}

func TestAnalyzer_LongestStreak(t *testing.T) {
	a := NewAnalyzer(newFake())

	n, err := a.LongestStreak("guitar")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = a.LongestStreak("cleaning")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}

func TestAnalyzer_LongestStreak_NoCompletions(t *testing.T) {
	n, err := NewAnalyzer(newFake()).LongestStreak("empty")
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestAnalyzer_LongestStreak_UnknownHabit(t *testing.T) {
	n, err := NewAnalyzer(newFake()).LongestStreak("nope")
	require.ErrorIs(t, err, errNoHabit)
	assert.Equal(t, 0, n)
}

func TestAnalyzer_LongestStreakAll(t *testing.T) {
	a := NewAnalyzer(newFake())

	first, err := a.LongestStreakAll()
	require.NoError(t, err)
	assert.Equal(t, 7, first)

	second, err := a.LongestStreakAll()
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAnalyzer_LongestStreakAll_SourceError(t *testing.T) {
	boom := errors.New("disk on fire")
	_, err := NewAnalyzer(&fakeSource{fail: boom}).LongestStreakAll()
	assert.ErrorIs(t, err, boom)
}

func TestAnalyzer_LongestStreaks(t *testing.T) {
	a := NewAnalyzer(newFake())
	names := []string{"cleaning", "guitar", "empty", "bed"}

	got, err := a.LongestStreaks(context.Background(), names)
	require.NoError(t, err)
	assert.Equal(t, []Result{
		{Name: "cleaning", Longest: 7},
		{Name: "guitar", Longest: 3},
		{Name: "empty", Longest: 0},
		{Name: "bed", Longest: 2},
	}, got)
}

func TestAnalyzer_LongestStreaks_PropagatesError(t *testing.T) {
	_, err := NewAnalyzer(newFake()).LongestStreaks(context.Background(), []string{"guitar", "nope"})
	assert.ErrorIs(t, err, errNoHabit)
}

func TestAnalyzer_LongestStreaks_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewAnalyzer(newFake()).LongestStreaks(ctx, []string{"guitar"})
	assert.ErrorIs(t, err, context.Canceled)
}
