package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/ortenszky/Habit-Tracker-Application/internal/tui"
	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
	"github.com/spf13/cobra"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete [name]",
	Aliases: []string{"rm"},
	Short:   "Stop tracking a habit and drop its history",
	Args:    cobra.MaximumNArgs(1),
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation")
}

func runDelete(_ *cobra.Command, args []string) error {
	db, hs, err := openHabitStore()
	if err != nil {
		return err
	}
	defer db.Close()

	h, err := resolveHabit(hs, args, "Delete which habit?")
	if err != nil || h == nil {
		return err
	}

	if !deleteYes {
		if !tui.IsTTY() {
			return fmt.Errorf("refusing to delete %q without confirmation (pass %s)", h.Name, ui.Accent.Render("--yes"))
		}
		var ok bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q?", h.Name)).
			Description(fmt.Sprintf("Its %d completion(s) go with it.", h.Completions)).
			Affirmative("Delete").
			Negative("Keep").
			Value(&ok).
			Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if !ok {
			ui.Inf("Kept " + h.Name)
			return nil
		}
	}

	if err := hs.Delete(h.ID); err != nil {
		return err
	}
	ui.Ok(fmt.Sprintf("Deleted %s", ui.Accent.Render(h.Name)))
	return nil
}
