// Package habit persists habits and their completions, and serves them to
// the streak engine as a streak.Source.
package habit

import (
	"errors"
	"time"

	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
)

var (
	// ErrNotFound is returned when no habit matches a name or id.
	ErrNotFound = errors.New("habit not found")
	// ErrDuplicateName is returned when creating a habit whose name is taken.
	ErrDuplicateName = errors.New("habit name already exists")
)

// Habit is a recurring activity the user wants to track.
type Habit struct {
	ID          string
	Name        string
	Description string
	Periodicity streak.Periodicity
	CreatedAt   time.Time

	// Completions is the number of recorded completions. Filled by List and Get.
	Completions int
}

// Completion records one check-off of a habit.
type Completion struct {
	ID      string
	HabitID string
	At      time.Time
}
