// Package seed loads example habits and completion history into a store.
package seed

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/ortenszky/Habit-Tracker-Application/internal/habit"
	"github.com/ortenszky/Habit-Tracker-Application/internal/logger"
	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
	"gopkg.in/yaml.v3"
)

//go:embed example.yaml
var exampleYAML []byte

// Dataset is the YAML shape of a seed file.
type Dataset struct {
	Habits []HabitSeed `yaml:"habits"`
}

// HabitSeed is one habit and its completion timestamps.
type HabitSeed struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Periodicity string   `yaml:"periodicity"`
	Completions []string `yaml:"completions"`
}

// Result summarizes what Apply wrote.
type Result struct {
	Habits      int
	Completions int
	Skipped     []string // habit names that already existed
}

// Example returns the built-in example dataset.
func Example() (*Dataset, error) {
	return Parse(bytes.NewReader(exampleYAML))
}

// Parse decodes and validates a dataset. Unknown keys, unknown periodicities
// and unparseable timestamps are errors.
func Parse(r io.Reader) (*Dataset, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var ds Dataset
	if err := dec.Decode(&ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding seed data: %w", err)
	}

	if err := ds.Validate(); err != nil {
		return nil, err
	}
	return &ds, nil
}

// Validate checks every habit has a name, a known periodicity and
// parseable completion timestamps.
func (ds *Dataset) Validate() error {
	for i, h := range ds.Habits {
		if h.Name == "" {
			return fmt.Errorf("habit #%d: missing name", i+1)
		}
		if _, err := streak.ParsePeriodicity(h.Periodicity); err != nil {
			return fmt.Errorf("habit %q: %w", h.Name, err)
		}
		for _, raw := range h.Completions {
			if _, err := habit.ParseStamp(raw); err != nil {
				return fmt.Errorf("habit %q: %w", h.Name, err)
			}
		}
	}
	return nil
}

// Apply validates ds and writes it into s in one transaction, so either the
// whole dataset lands or nothing does. Habits whose name is already taken
// are skipped along with their completions.
func Apply(s *habit.Store, ds *Dataset, now time.Time) (Result, error) {
	if err := ds.Validate(); err != nil {
		return Result{}, err
	}

	var res Result
	err := s.InTx(func(tx *habit.Store) error {
		for _, hs := range ds.Habits {
			p, err := streak.ParsePeriodicity(hs.Periodicity)
			if err != nil {
				return fmt.Errorf("habit %q: %w", hs.Name, err)
			}
			h, err := tx.Create(hs.Name, hs.Description, p, now)
			if errors.Is(err, habit.ErrDuplicateName) {
				res.Skipped = append(res.Skipped, hs.Name)
				continue
			}
			if err != nil {
				return err
			}
			res.Habits++

			for _, raw := range hs.Completions {
				at, err := habit.ParseStamp(raw)
				if err != nil {
					return fmt.Errorf("habit %q: %w", hs.Name, err)
				}
				if _, err := tx.CheckOff(h.ID, at); err != nil {
					return err
				}
				res.Completions++
			}
		}
		return nil
	})
	if err != nil {
		return Result{}, err
	}

	logger.Info("seed data applied", "habits", res.Habits, "completions", res.Completions, "skipped", len(res.Skipped))
	return res, nil
}
