package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ortenszky/Habit-Tracker-Application/internal/seed"
	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
	"github.com/spf13/cobra"
)

var (
	seedFile  string
	seedForce bool
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load example habits with a few weeks of history",
	Long: `Load example habits and completions.

Without --file, the built-in examples are loaded: four habits with
completions spread over a month. A YAML file looks like:

  habits:
    - name: Reading
      description: Read 25 pages
      periodicity: daily
      completions:
        - "2024-03-01 08:30:00"

Habits whose name is already taken are skipped. --force deletes every
existing habit first.`,
	Args: cobra.NoArgs,
	RunE: runSeed,
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "Load habits from a YAML file")
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "Delete existing habits before loading")
}

func runSeed(_ *cobra.Command, _ []string) error {
	ds, err := readSeedData()
	if err != nil {
		return err
	}

	db, hs, err := openHabitStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if seedForce {
		n, err := hs.DeleteAll()
		if err != nil {
			return err
		}
		if n > 0 {
			ui.Warn(fmt.Sprintf("Deleted %d existing habit(s)", n))
		}
	}

	res, err := seed.Apply(hs, ds, time.Now())
	if err != nil {
		return err
	}
	if err := db.SetKV(seedOfferedKey, time.Now().Format(time.RFC3339)); err != nil {
		return err
	}

	ui.Ok(fmt.Sprintf("Loaded %d habit(s) with %d completion(s)", res.Habits, res.Completions))
	if len(res.Skipped) > 0 {
		ui.Inf("Skipped existing: " + strings.Join(res.Skipped, ", "))
		ui.Tip(fmt.Sprintf("%s replaces them.", ui.Accent.Render("habit seed --force")))
	}
	return nil
}

func readSeedData() (*seed.Dataset, error) {
	if seedFile == "" {
		return seed.Example()
	}
	f, err := os.Open(seedFile)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()
	return seed.Parse(f)
}
