package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ortenszky/Habit-Tracker-Application/internal/config"
	"github.com/ortenszky/Habit-Tracker-Application/internal/habit"
	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
)

func TestRunAdd_UsesConfiguredPeriodicity(t *testing.T) {
	configTestEnv(t)

	cfg, _ := config.Load()
	cfg.Habits.DefaultPeriodicity = "weekly"
	if err := config.Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	addDescription = "Hoover and dust"
	out := captureStdout(t, func() {
		if err := runAdd(nil, []string{"Cleaning"}); err != nil {
			t.Errorf("runAdd: %v", err)
		}
	})
	if !strings.Contains(out, "Cleaning") {
		t.Errorf("expected habit name in output, got %q", out)
	}

	withStore(t, func(hs *habit.Store) {
		h, err := hs.Get("Cleaning")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if h.Periodicity != streak.Weekly {
			t.Errorf("periodicity = %q, want weekly", h.Periodicity)
		}
		if h.Description != "Hoover and dust" {
			t.Errorf("description = %q", h.Description)
		}
	})
}

func TestRunAdd_FlagOverridesConfig(t *testing.T) {
	configTestEnv(t)

	if err := addPeriodicity.Set("weekly"); err != nil {
		t.Fatal(err)
	}
	captureStdout(t, func() {
		if err := runAdd(nil, []string{"Guitar"}); err != nil {
			t.Errorf("runAdd: %v", err)
		}
	})

	withStore(t, func(hs *habit.Store) {
		h, err := hs.Get("Guitar")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if h.Periodicity != streak.Weekly {
			t.Errorf("periodicity = %q, want weekly", h.Periodicity)
		}
	})
}

func TestRunAdd_Duplicate(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily)

	err := runAdd(nil, []string{"Reading"})
	if err == nil || !strings.Contains(err.Error(), "already track") {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestRunAdd_RequiresName(t *testing.T) {
	configTestEnv(t)

	if err := runAdd(nil, []string{"   "}); err == nil {
		t.Fatal("expected error for blank name")
	}
}

func TestRunList(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily, day(1), day(2))
	createHabit(t, "Cleaning", streak.Weekly)

	out := captureStdout(t, func() {
		if err := runList(nil, nil); err != nil {
			t.Errorf("runList: %v", err)
		}
	})
	for _, want := range []string{"Reading", "Cleaning", "2 done", "2 habit(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}

	listPeriodicity = periodicityValue(streak.Weekly)
	out = captureStdout(t, func() {
		if err := runList(nil, nil); err != nil {
			t.Errorf("runList: %v", err)
		}
	})
	if strings.Contains(out, "Reading") || !strings.Contains(out, "Cleaning") {
		t.Errorf("weekly filter output:\n%s", out)
	}
}

func TestRunList_Empty(t *testing.T) {
	configTestEnv(t)

	out := captureStdout(t, func() {
		if err := runList(nil, nil); err != nil {
			t.Errorf("runList: %v", err)
		}
	})
	if !strings.Contains(out, "No habits yet") {
		t.Errorf("expected empty message, got %q", out)
	}
}

func TestRunCheck_RecordsAndReportsStreak(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily)

	for _, at := range []string{"2024-03-01", "2024-03-02 21:00:00", "2024-03-03"} {
		checkAt = at
		captureStdout(t, func() {
			if err := runCheck(nil, []string{"Reading"}); err != nil {
				t.Errorf("runCheck %s: %v", at, err)
			}
		})
	}

	checkAt = "2024-03-04"
	out := captureStdout(t, func() {
		if err := runCheck(nil, []string{"Reading"}); err != nil {
			t.Errorf("runCheck: %v", err)
		}
	})
	if !strings.Contains(out, "4 days") {
		t.Errorf("expected longest streak of 4 days, got:\n%s", out)
	}
	if !strings.Contains(out, "4 time(s)") {
		t.Errorf("expected completion count of 4, got:\n%s", out)
	}
}

func TestRunCheck_BadAt(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily)

	checkAt = "03/2024"
	if err := runCheck(nil, []string{"Reading"}); !errors.Is(err, habit.ErrMalformedStamp) {
		t.Fatalf("expected ErrMalformedStamp, got %v", err)
	}
}

func TestRunCheck_UnknownHabit(t *testing.T) {
	configTestEnv(t)

	if err := runCheck(nil, []string{"Nope"}); !errors.Is(err, habit.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunCheck_NoNameWithoutTerminal(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily)

	if err := runCheck(nil, nil); err == nil {
		t.Fatal("expected error when no name is given and stdin is not a terminal")
	}
}

func TestRunReset(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily, day(1), day(2))
	createHabit(t, "Guitar", streak.Daily, day(1))

	out := captureStdout(t, func() {
		if err := runReset(nil, []string{"Reading"}); err != nil {
			t.Errorf("runReset: %v", err)
		}
	})
	if !strings.Contains(out, "2 completions cleared") {
		t.Errorf("unexpected output %q", out)
	}

	resetAll = true
	out = captureStdout(t, func() {
		if err := runReset(nil, nil); err != nil {
			t.Errorf("runReset --all: %v", err)
		}
	})
	if !strings.Contains(out, "1 completions cleared") {
		t.Errorf("unexpected output %q", out)
	}

	if err := runReset(nil, []string{"Reading"}); err == nil {
		t.Fatal("expected error for a name together with --all")
	}
}

func TestRunDelete(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily, day(1))

	if err := runDelete(nil, []string{"Reading"}); err == nil || !strings.Contains(err.Error(), "--yes") {
		t.Fatalf("expected confirmation error, got %v", err)
	}

	deleteYes = true
	captureStdout(t, func() {
		if err := runDelete(nil, []string{"Reading"}); err != nil {
			t.Errorf("runDelete: %v", err)
		}
	})

	withStore(t, func(hs *habit.Store) {
		if _, err := hs.Get("Reading"); !errors.Is(err, habit.ErrNotFound) {
			t.Errorf("expected habit to be gone, got %v", err)
		}
	})
}

func TestRunInfo(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Cleaning", streak.Weekly, day(1), day(8))

	out := captureStdout(t, func() {
		if err := runInfo(nil, []string{"Cleaning"}); err != nil {
			t.Errorf("runInfo: %v", err)
		}
	})
	for _, want := range []string{"Cleaning", "weekly", "14 days", "Recent", "Fri Mar 8, 2024 09:00", "Fri Mar 1, 2024 09:00"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	_, recent, _ := strings.Cut(out, "Recent")
	if strings.Index(recent, "Mar 8") > strings.Index(recent, "Mar 1,") {
		t.Errorf("expected newest completion first:\n%s", out)
	}
}

func TestRunInfo_ListsOnlyRecentCompletions(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily, day(1), day(2), day(3), day(4), day(5), day(6), day(7))

	out := captureStdout(t, func() {
		if err := runInfo(nil, []string{"Reading"}); err != nil {
			t.Errorf("runInfo: %v", err)
		}
	})
	_, recent, _ := strings.Cut(out, "Recent")
	if got := strings.Count(recent, "2024 09:00"); got != recentCompletions {
		t.Errorf("listed %d completions, want %d:\n%s", got, recentCompletions, out)
	}
	if strings.Contains(recent, "Mar 1,") || !strings.Contains(recent, "Mar 7,") {
		t.Errorf("expected the newest completions only:\n%s", out)
	}
}

func TestRunStreak(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily, day(1), day(2), day(3), day(5))
	createHabit(t, "Guitar", streak.Daily, day(4))
	createHabit(t, "Cleaning", streak.Weekly)

	out := captureStdout(t, func() {
		if err := runStreak(nil, []string{"Reading"}); err != nil {
			t.Errorf("runStreak: %v", err)
		}
	})
	if !strings.Contains(out, "3 days") {
		t.Errorf("Reading streak output: %q", out)
	}

	// Guitar's completion on the 4th joins Reading's into one daily run.
	streakAll = true
	out = captureStdout(t, func() {
		if err := runStreak(nil, nil); err != nil {
			t.Errorf("runStreak --all: %v", err)
		}
	})
	if !strings.Contains(out, "5 days") {
		t.Errorf("aggregate output: %q", out)
	}
}

func TestRunStreak_Overview(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily, day(1), day(2))
	createHabit(t, "Cleaning", streak.Weekly, day(1), day(7), day(14))

	out := captureStdout(t, func() {
		if err := runStreak(nil, nil); err != nil {
			t.Errorf("runStreak: %v", err)
		}
	})
	for _, want := range []string{"Reading", "2 days", "Cleaning", "21 days"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRunStreak_UnknownHabit(t *testing.T) {
	configTestEnv(t)

	if err := runStreak(nil, []string{"Nope"}); !errors.Is(err, habit.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRunSeed(t *testing.T) {
	configTestEnv(t)

	out := captureStdout(t, func() {
		if err := runSeed(nil, nil); err != nil {
			t.Errorf("runSeed: %v", err)
		}
	})
	if !strings.Contains(out, "Loaded 4 habit(s) with 39 completion(s)") {
		t.Errorf("unexpected output %q", out)
	}

	out = captureStdout(t, func() {
		if err := runSeed(nil, nil); err != nil {
			t.Errorf("runSeed again: %v", err)
		}
	})
	if !strings.Contains(out, "Skipped existing") {
		t.Errorf("expected skipped habits, got %q", out)
	}

	streakAll = true
	out = captureStdout(t, func() {
		if err := runStreak(nil, nil); err != nil {
			t.Errorf("runStreak: %v", err)
		}
	})
	if !strings.Contains(out, "21 days") {
		t.Errorf("expected 21 day overall streak, got %q", out)
	}
}

func TestRunSeed_FileWithForce(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Old habit", streak.Daily, day(1))

	path := filepath.Join(t.TempDir(), "habits.yaml")
	data := `habits:
  - name: Stretching
    periodicity: daily
    completions:
      - "2024-03-01 07:00:00"
      - "2024-03-02 07:00:00"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	seedFile, seedForce = path, true
	captureStdout(t, func() {
		if err := runSeed(nil, nil); err != nil {
			t.Errorf("runSeed: %v", err)
		}
	})

	withStore(t, func(hs *habit.Store) {
		habits, err := hs.List()
		if err != nil {
			t.Fatal(err)
		}
		if len(habits) != 1 || habits[0].Name != "Stretching" || habits[0].Completions != 2 {
			t.Errorf("habits after forced seed: %+v", habits)
		}
	})
}

func TestRunDashboard_Empty(t *testing.T) {
	configTestEnv(t)

	out := captureStdout(t, func() {
		if err := runDashboard(nil, nil); err != nil {
			t.Errorf("runDashboard: %v", err)
		}
	})
	if !strings.Contains(out, "No habits yet") || !strings.Contains(out, "habit seed") {
		t.Errorf("unexpected dashboard:\n%s", out)
	}
}

func TestRunDashboard_WithHabits(t *testing.T) {
	configTestEnv(t)
	createHabit(t, "Reading", streak.Daily, day(1), day(2), day(3))

	out := captureStdout(t, func() {
		if err := runDashboard(nil, nil); err != nil {
			t.Errorf("runDashboard: %v", err)
		}
	})
	if !strings.Contains(out, "1 tracked") || !strings.Contains(out, "3 days") {
		t.Errorf("unexpected dashboard:\n%s", out)
	}
}
