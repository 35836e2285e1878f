package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
	"github.com/spf13/cobra"
)

var streakAll bool

var streakCmd = &cobra.Command{
	Use:   "streak [name]",
	Short: "Show longest streaks",
	Long: `Show the longest streak of one habit, of all habits together (--all),
or, with neither, an overview of every habit.

Streaks are counted in days. A weekly habit's run of consecutive weeks
counts seven days per week.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runStreak,
}

func init() {
	streakCmd.Flags().BoolVarP(&streakAll, "all", "a", false, "Longest streak across all habits")
}

func runStreak(cmd *cobra.Command, args []string) error {
	if streakAll && len(args) > 0 {
		return errors.New("give a habit name or --all, not both")
	}

	db, hs, err := openHabitStore()
	if err != nil {
		return err
	}
	defer db.Close()

	a := streak.NewAnalyzer(hs)

	switch {
	case streakAll:
		n, err := a.LongestStreakAll()
		if err != nil {
			return err
		}
		fmt.Printf("%s Longest streak across all habits: %s\n", ui.IconTrophy, ui.Accent.Render(ui.Days(n)))
		return nil

	case len(args) > 0:
		h, err := resolveHabit(hs, args, "")
		if err != nil {
			return err
		}
		n, err := a.LongestStreak(h.Name)
		if err != nil {
			return err
		}
		fmt.Printf("%s Longest streak for %s: %s\n", ui.IconFire, h.Name, ui.Accent.Render(ui.Days(n)))
		return nil
	}

	habits, err := hs.List()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println(ui.Muted.Render("  No habits yet, so no streaks."))
		return nil
	}

	names := make([]string, len(habits))
	width := 0
	for i, h := range habits {
		names[i] = h.Name
		width = max(width, len([]rune(h.Name)))
	}

	ctx := context.Background()
	if cmd != nil && cmd.Context() != nil {
		ctx = cmd.Context()
	}
	results, err := a.LongestStreaks(ctx, names)
	if err != nil {
		return err
	}
	best, err := a.LongestStreakAll()
	if err != nil {
		return err
	}

	ui.Header(ui.IconFire + " Longest streaks")
	for i, r := range results {
		bar := ui.Success.Render(strings.Repeat("▇", min(r.Longest, 30)))
		fmt.Printf("  %-*s %s %8s %s\n", width, r.Name, periodicityTag(habits[i].Periodicity), ui.Days(r.Longest), bar)
	}
	fmt.Println()
	ui.Kv(ui.IconTrophy+" Overall", ui.Days(best))
	fmt.Println()
	return nil
}
