package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/ortenszky/Habit-Tracker-Application/internal/config"
	"github.com/ortenszky/Habit-Tracker-Application/internal/habit"
	"github.com/ortenszky/Habit-Tracker-Application/internal/logger"
	"github.com/ortenszky/Habit-Tracker-Application/internal/seed"
	"github.com/ortenszky/Habit-Tracker-Application/internal/store"
	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
	"github.com/ortenszky/Habit-Tracker-Application/internal/tips"
	"github.com/ortenszky/Habit-Tracker-Application/internal/tui"
	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
	"github.com/ortenszky/Habit-Tracker-Application/internal/version"
	"github.com/spf13/cobra"
)

// seedOfferedKey marks that the example data prompt was shown once.
const seedOfferedKey = "seed.offered"

var noColor bool

var rootCmd = &cobra.Command{
	Use:               "habit",
	Short:             "Track your habits and the streaks they build",
	Long:              `Check habits off as you do them and see how long your streaks run.`,
	RunE:              runDashboard,
	PersistentPreRunE: setup,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		ui.Err(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(streakCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup runs before every command: color handling, then the logger.
// A logger that fails to start never blocks the command itself.
func setup(_ *cobra.Command, _ []string) error {
	if noColor || ui.ColorDisabledByEnv() {
		ui.DisableColor()
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	err = logger.Init(logger.Config{
		Debug:  cfg.Log.Debug,
		Level:  cfg.Log.Level,
		LogDir: config.GetPaths().LogDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: logging disabled: %v\n", err)
	}
	return nil
}

// runDashboard shows the at-a-glance status when you just type `habit`.
func runDashboard(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	db, hs, err := openHabitStore()
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Println(ui.Greet(cfg.User.Name))
	fmt.Println()

	count, err := hs.Count()
	if err != nil {
		return err
	}

	if count == 0 {
		seeded, err := offerExampleData(db, hs)
		if err != nil {
			return err
		}
		if !seeded {
			fmt.Println(ui.Muted.Render("  No habits yet. Every streak starts with day one."))
			fmt.Println()
			fmt.Printf("  Add one: %s\n", ui.Accent.Render(`habit add "Reading"`))
			fmt.Printf("  Or try the examples: %s\n", ui.Accent.Render("habit seed"))
			fmt.Println()
			return nil
		}
		if count, err = hs.Count(); err != nil {
			return err
		}
	}

	best, err := streak.NewAnalyzer(hs).LongestStreakAll()
	if err != nil {
		return fmt.Errorf("computing streaks: %w", err)
	}

	ui.Kv(ui.IconHabit+" Habits", fmt.Sprintf("%d tracked", count))
	ui.Kv(ui.IconTrophy+" Best", ui.Days(best))
	ui.Kv(ui.IconCalendar+" Today", time.Now().Format("Monday, January 2"))
	ui.Kv("⚙️  Habit", version.Short())

	ui.Tip(tips.Daily(time.Now()))
	fmt.Println()
	return nil
}

// offerExampleData asks once, on a terminal, whether to load the example
// habits into an empty database. It reports whether anything was loaded.
func offerExampleData(db *store.DB, hs *habit.Store) (bool, error) {
	if !tui.IsTTY() || !ui.IsStdoutTTY() {
		return false, nil
	}
	if _, offered, err := db.GetKV(seedOfferedKey); err != nil || offered {
		return false, err
	}
	if err := db.SetKV(seedOfferedKey, time.Now().Format(time.RFC3339)); err != nil {
		return false, err
	}

	var load bool
	err := huh.NewConfirm().
		Title("Load some example habits to play with?").
		Description("Four habits with a few weeks of history. Remove them later with `habit delete`.").
		Affirmative("Yes please").
		Negative("No thanks").
		Value(&load).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if !load {
		return false, nil
	}

	res, err := loadExample(hs)
	if err != nil {
		return false, err
	}
	ui.Ok(fmt.Sprintf("Loaded %d habits with %d completions", res.Habits, res.Completions))
	fmt.Println()
	return true, nil
}

func loadExample(hs *habit.Store) (seed.Result, error) {
	ds, err := seed.Example()
	if err != nil {
		return seed.Result{}, err
	}
	return seed.Apply(hs, ds, time.Now())
}
