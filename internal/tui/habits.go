package tui

import (
	"fmt"

	"github.com/ortenszky/Habit-Tracker-Application/internal/habit"
)

// habitItem adapts a habit for the picker.
type habitItem struct {
	h habit.Habit
}

func (i habitItem) FilterValue() string { return i.h.Name }
func (i habitItem) Title() string       { return i.h.Name }

func (i habitItem) Description() string {
	return fmt.Sprintf("%s · %d done", i.h.Periodicity, i.h.Completions)
}

// HabitItems wraps habits as picker items.
func HabitItems(habits []habit.Habit) []Item {
	items := make([]Item, len(habits))
	for i, h := range habits {
		items[i] = habitItem{h: h}
	}
	return items
}

// pickerRows is how many habits the picker shows at once.
const pickerRows = 8

// PickHabit lets the user choose one of habits. It returns nil when canceled.
func PickHabit(title string, habits []habit.Habit) (*habit.Habit, error) {
	chosen, err := Run(HabitItems(habits), WithTitle(title), WithHeight(pickerRows))
	if err != nil || chosen == nil {
		return nil, err
	}
	h := chosen.(habitItem).h
	return &h, nil
}
