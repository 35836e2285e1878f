package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/ortenszky/Habit-Tracker-Application/internal/habit"
	"github.com/ortenszky/Habit-Tracker-Application/internal/store"
	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
	"github.com/ortenszky/Habit-Tracker-Application/internal/tui"
	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
	"github.com/spf13/pflag"
)

func openHabitStore() (*store.DB, *habit.Store, error) {
	db, err := store.Open()
	if err != nil {
		return nil, nil, fmt.Errorf("opening store: %w", err)
	}
	return db, habit.NewStore(db.Conn()), nil
}

// resolveHabit finds the habit named in args, or lets the user pick one when
// no name was given and stdin is a terminal. A nil habit with a nil error
// means the user canceled the picker.
func resolveHabit(hs *habit.Store, args []string, title string) (*habit.Habit, error) {
	if len(args) > 0 {
		h, err := hs.Get(args[0])
		if errors.Is(err, habit.ErrNotFound) {
			return nil, fmt.Errorf("%w (run %s to see your habits)", err, ui.Accent.Render("habit list"))
		}
		return h, err
	}

	if !tui.IsTTY() {
		return nil, errors.New("habit name required")
	}

	habits, err := hs.List()
	if err != nil {
		return nil, err
	}
	if len(habits) == 0 {
		return nil, fmt.Errorf("no habits yet (add one with %s)", ui.Accent.Render(`habit add "Reading"`))
	}
	return tui.PickHabit(title, habits)
}

// parseAt turns an --at value into a timestamp; empty means now.
func parseAt(raw string, now time.Time) (time.Time, error) {
	if raw == "" {
		return now, nil
	}
	at, err := habit.ParseStamp(raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --at: %w (use YYYY-MM-DD or \"YYYY-MM-DD HH:MM:SS\")", err)
	}
	return at, nil
}

// periodicityValue is a --periodicity flag restricted to known periodicities.
// The zero value means the flag was not given.
type periodicityValue streak.Periodicity

var _ pflag.Value = (*periodicityValue)(nil)

func (v *periodicityValue) String() string { return string(*v) }

func (v *periodicityValue) Set(s string) error {
	p, err := streak.ParsePeriodicity(s)
	if err != nil {
		return err
	}
	*v = periodicityValue(p)
	return nil
}

func (v *periodicityValue) Type() string { return "periodicity" }

func (v *periodicityValue) get() streak.Periodicity { return streak.Periodicity(*v) }

func periodicityTag(p streak.Periodicity) string {
	return ui.Tag.Render(p.String())
}
