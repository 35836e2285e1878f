package cmd

import (
	"fmt"

	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
	"github.com/spf13/cobra"
)

// recentCompletions is how many completions info lists, newest first.
const recentCompletions = 5

var infoCmd = &cobra.Command{
	Use:   "info [name]",
	Short: "Show the details of one habit",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func runInfo(_ *cobra.Command, args []string) error {
	db, hs, err := openHabitStore()
	if err != nil {
		return err
	}
	defer db.Close()

	h, err := resolveHabit(hs, args, "Which habit?")
	if err != nil || h == nil {
		return err
	}

	longest, err := streak.NewAnalyzer(hs).LongestStreak(h.Name)
	if err != nil {
		return err
	}
	completions, err := hs.Completions(h.ID)
	if err != nil {
		return err
	}

	ui.Header(ui.IconHabit + " " + h.Name)
	if h.Description != "" {
		ui.Kv("Description", h.Description)
	}
	ui.Kv("Periodicity", periodicityTag(h.Periodicity))
	ui.Kv("Created", h.CreatedAt.Format("Jan 2, 2006 15:04"))
	ui.Kv("Completions", fmt.Sprintf("%d", h.Completions))
	ui.Kv("Longest", ui.Days(longest))

	if len(completions) > 0 {
		fmt.Println()
		fmt.Println(ui.Subtitle.Render("  Recent"))
		recent := completions[max(0, len(completions)-recentCompletions):]
		for i := len(recent) - 1; i >= 0; i-- {
			fmt.Printf("  %s %s\n", ui.Success.Render(ui.IconOk), recent[i].At.Format("Mon Jan 2, 2006 15:04"))
		}
	}
	fmt.Println()
	return nil
}
