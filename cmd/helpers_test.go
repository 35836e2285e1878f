package cmd

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/ortenszky/Habit-Tracker-Application/internal/habit"
	"github.com/ortenszky/Habit-Tracker-Application/internal/store"
	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
)

// configTestEnv points every XDG directory at a temp dir and clears flag state.
func configTestEnv(t *testing.T) {
	t.Helper()
	tmpDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmpDir+"/config")
	t.Setenv("XDG_DATA_HOME", tmpDir+"/data")
	t.Setenv("XDG_CACHE_HOME", tmpDir+"/cache")
	t.Setenv("XDG_STATE_HOME", tmpDir+"/state")
	t.Setenv("NO_COLOR", "1")
	resetFlags()
}

func resetFlags() {
	addDescription, addPeriodicity = "", ""
	listPeriodicity = ""
	checkAt = ""
	resetAll = false
	deleteYes = false
	streakAll = false
	seedFile, seedForce = "", false
	versionShort = false
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	os.Stdout = w
	defer func() {
		os.Stdout = old
		r.Close()
	}()

	fn()

	w.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("io.Copy: %v", err)
	}
	return buf.String()
}

// withStore opens the store the commands use, for arranging and inspecting state.
func withStore(t *testing.T, fn func(hs *habit.Store)) {
	t.Helper()
	db, err := store.Open()
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	defer db.Close()
	fn(habit.NewStore(db.Conn()))
}

func createHabit(t *testing.T, name string, p streak.Periodicity, checks ...time.Time) {
	t.Helper()
	withStore(t, func(hs *habit.Store) {
		h, err := hs.Create(name, "", p, time.Now())
		if err != nil {
			t.Fatalf("Create %q: %v", name, err)
		}
		for _, at := range checks {
			if _, err := hs.CheckOff(h.ID, at); err != nil {
				t.Fatalf("CheckOff: %v", err)
			}
		}
	})
}

func day(d int) time.Time {
	return time.Date(2024, 3, d, 9, 0, 0, 0, time.UTC)
}

func TestPeriodicityValue(t *testing.T) {
	var v periodicityValue
	if v.String() != "" {
		t.Fatalf("zero value = %q, want empty", v.String())
	}
	if err := v.Set("Weekly"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v.get() != streak.Weekly {
		t.Fatalf("get() = %q, want weekly", v.get())
	}
	if err := v.Set("monthly"); err == nil {
		t.Fatal("expected error for monthly")
	}
	if v.Type() != "periodicity" {
		t.Fatalf("Type() = %q", v.Type())
	}
}

func TestParseAt(t *testing.T) {
	now := time.Date(2024, 3, 9, 18, 30, 0, 0, time.UTC)

	got, err := parseAt("", now)
	if err != nil || !got.Equal(now) {
		t.Fatalf("parseAt(\"\") = %v, %v", got, err)
	}

	got, err = parseAt("2024-03-01", now)
	if err != nil {
		t.Fatalf("parseAt date: %v", err)
	}
	if got.Day() != 1 || got.Month() != time.March {
		t.Fatalf("parseAt date = %v", got)
	}

	if _, err := parseAt("2024-03-01 08:15:00", now); err != nil {
		t.Fatalf("parseAt datetime: %v", err)
	}
	if _, err := parseAt("yesterday-ish", now); err == nil {
		t.Fatal("expected error for malformed --at")
	}
}

func TestResolveHabit_NotFoundHint(t *testing.T) {
	configTestEnv(t)

	withStore(t, func(hs *habit.Store) {
		_, err := resolveHabit(hs, []string{"Nope"}, "")
		if err == nil {
			t.Fatal("expected error")
		}
		if !strings.Contains(err.Error(), "habit list") {
			t.Errorf("expected hint in %q", err)
		}
	})
}
