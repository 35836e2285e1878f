package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/ortenszky/Habit-Tracker-Application/internal/config"
	"github.com/ortenszky/Habit-Tracker-Application/internal/habit"
	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
	"github.com/ortenszky/Habit-Tracker-Application/internal/tui"
	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
	"github.com/spf13/cobra"
)

var (
	addDescription string
	addPeriodicity periodicityValue
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Start tracking a new habit",
	Long: `Start tracking a new habit.

Without a name in an interactive terminal, a short form asks for the
name, description and periodicity. The periodicity defaults to
habits.default_periodicity from the config.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "What the habit is about")
	addCmd.Flags().VarP(&addPeriodicity, "periodicity", "p", "How often: daily or weekly")
}

func runAdd(_ *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	p := addPeriodicity.get()
	if p == "" {
		p, err = streak.ParsePeriodicity(cfg.Habits.DefaultPeriodicity)
		if err != nil {
			return fmt.Errorf("habits.default_periodicity: %w", err)
		}
	}

	name := ""
	if len(args) > 0 {
		name = strings.TrimSpace(args[0])
	} else if tui.IsTTY() {
		if err := runAddForm(&name, &addDescription, &p); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}
		name = strings.TrimSpace(name)
	}
	if name == "" {
		return errors.New("habit name required")
	}

	db, hs, err := openHabitStore()
	if err != nil {
		return err
	}
	defer db.Close()

	h, err := hs.Create(name, strings.TrimSpace(addDescription), p, time.Now())
	if errors.Is(err, habit.ErrDuplicateName) {
		return fmt.Errorf("you already track %q (see %s)", name, ui.Accent.Render("habit info "+name))
	}
	if err != nil {
		return err
	}

	ui.Ok(fmt.Sprintf("Tracking %s %s", ui.Accent.Render(h.Name), periodicityTag(h.Periodicity)))
	ui.Tip(fmt.Sprintf("`habit check %q` when you've done it.", h.Name))
	fmt.Println()
	return nil
}

func runAddForm(name, description *string, p *streak.Periodicity) error {
	options := make([]huh.Option[streak.Periodicity], 0, len(streak.Periodicities))
	for _, each := range streak.Periodicities {
		options = append(options, huh.NewOption(strings.ToUpper(each.String()[:1])+each.String()[1:], each))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Reading").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("a habit needs a name")
					}
					return nil
				}),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(description),
			huh.NewSelect[streak.Periodicity]().
				Title("Periodicity").
				Options(options...).
				Value(p),
		),
	).Run()
}
