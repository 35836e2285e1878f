package cmd

import (
	"fmt"
	"time"

	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
	"github.com/spf13/cobra"
)

var checkAt string

var checkCmd = &cobra.Command{
	Use:     "check [name]",
	Aliases: []string{"done", "x"},
	Short:   "Check off a habit, now or at a given time",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkAt, "at", "", `When it happened: YYYY-MM-DD or "YYYY-MM-DD HH:MM:SS"`)
}

func runCheck(_ *cobra.Command, args []string) error {
	at, err := parseAt(checkAt, time.Now())
	if err != nil {
		return err
	}

	db, hs, err := openHabitStore()
	if err != nil {
		return err
	}
	defer db.Close()

	h, err := resolveHabit(hs, args, "Check off which habit?")
	if err != nil || h == nil {
		return err
	}

	if _, err := hs.CheckOff(h.ID, at); err != nil {
		return err
	}

	longest, err := streak.NewAnalyzer(hs).LongestStreak(h.Name)
	if err != nil {
		return err
	}
	done, err := hs.CompletionCount(h.ID)
	if err != nil {
		return err
	}

	ui.Ok(fmt.Sprintf("Checked off %s on %s", ui.Accent.Render(h.Name), at.Format("Mon Jan 2")))
	ui.Kv(ui.IconFire+" Longest", ui.Days(longest))
	ui.Kv(ui.IconCheck+" Done", fmt.Sprintf("%d time(s)", done))
	fmt.Println()
	return nil
}
