package cmd

import (
	"fmt"

	"github.com/ortenszky/Habit-Tracker-Application/internal/habit"
	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
	"github.com/spf13/cobra"
)

var listPeriodicity periodicityValue

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "Show every habit you track",
	Args:    cobra.NoArgs,
	RunE:    runList,
}

func init() {
	listCmd.Flags().VarP(&listPeriodicity, "periodicity", "p", "Only show daily or weekly habits")
}

func runList(_ *cobra.Command, _ []string) error {
	db, hs, err := openHabitStore()
	if err != nil {
		return err
	}
	defer db.Close()

	var habits []habit.Habit
	if p := listPeriodicity.get(); p != "" {
		habits, err = hs.ListByPeriodicity(p)
	} else {
		habits, err = hs.List()
	}
	if err != nil {
		return err
	}

	if len(habits) == 0 {
		fmt.Println()
		if p := listPeriodicity.get(); p != "" {
			fmt.Println(ui.Muted.Render(fmt.Sprintf("  No %s habits.", p)))
		} else {
			fmt.Println(ui.Muted.Render("  No habits yet."))
		}
		fmt.Println()
		fmt.Printf("  Add one: %s\n", ui.Accent.Render(`habit add "Reading"`))
		fmt.Println()
		return nil
	}

	width := 0
	for _, h := range habits {
		width = max(width, len([]rune(h.Name)))
	}

	fmt.Println()
	for _, h := range habits {
		line := fmt.Sprintf("  %s %-*s %s %s", ui.IconHabit, width, h.Name, periodicityTag(h.Periodicity),
			ui.Muted.Render(fmt.Sprintf("%3d done", h.Completions)))
		if h.Description != "" {
			line += ui.Muted.Render("  " + h.Description)
		}
		fmt.Println(line)
	}
	fmt.Println()
	fmt.Println(ui.Muted.Render(fmt.Sprintf("  %d habit(s)", len(habits))))
	fmt.Println()
	return nil
}
