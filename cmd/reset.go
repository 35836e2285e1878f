package cmd

import (
	"errors"
	"fmt"

	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
	"github.com/spf13/cobra"
)

var resetAll bool

var resetCmd = &cobra.Command{
	Use:   "reset [name]",
	Short: "Clear the completions of a habit, or of every habit with --all",
	Long: `Clear recorded completions so streaks start over.
The habits themselves are kept.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetAll, "all", "a", false, "Reset every habit")
}

func runReset(_ *cobra.Command, args []string) error {
	if resetAll && len(args) > 0 {
		return errors.New("give a habit name or --all, not both")
	}

	db, hs, err := openHabitStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if resetAll {
		n, err := hs.ResetAll()
		if err != nil {
			return err
		}
		ui.Ok(fmt.Sprintf("Reset every habit (%d completions cleared)", n))
		return nil
	}

	h, err := resolveHabit(hs, args, "Reset which habit?")
	if err != nil || h == nil {
		return err
	}

	n, err := hs.Reset(h.ID)
	if err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Reset %s (%d completions cleared)", ui.Accent.Render(h.Name), n))
	return nil
}
