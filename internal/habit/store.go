package habit

import (
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/ortenszky/Habit-Tracker-Application/internal/logger"
	"github.com/ortenszky/Habit-Tracker-Application/internal/streak"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// querier is what *sql.DB and *sql.Tx have in common.
type querier interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// Store handles habit persistence.
type Store struct {
	db *sql.DB // nil for a Store bound to a transaction
	q  querier
}

// NewStore creates a new habit store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, q: db}
}

// InTx runs fn against a Store bound to a single transaction. fn's reads see
// one snapshot and its writes are committed together, or not at all when fn
// returns an error. Nested calls reuse the outer transaction.
func (s *Store) InTx(fn func(tx *Store) error) error {
	if s.db == nil {
		return fn(s)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(&Store{q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

var _ streak.Source = (*Store)(nil)

// Create saves a new habit and returns it.
// The name must be unique; periodicity is stored as given.
func (s *Store) Create(name, description string, periodicity streak.Periodicity, now time.Time) (*Habit, error) {
	h := &Habit{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
		Periodicity: periodicity,
		CreatedAt:   now.Truncate(time.Second),
	}

	_, err := s.q.Exec(
		`INSERT INTO habits (id, name, description, periodicity, created_at) VALUES (?, ?, ?, ?, ?)`,
		h.ID, h.Name, h.Description, string(h.Periodicity), FormatStamp(h.CreatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
		}
		return nil, fmt.Errorf("creating habit: %w", err)
	}

	logger.Debug("habit created", "id", h.ID, "name", h.Name, "periodicity", h.Periodicity)
	return h, nil
}

const habitColumns = `h.id, h.name, h.description, h.periodicity, h.created_at,
	(SELECT COUNT(*) FROM completions c WHERE c.habit_id = h.id)`

// Get returns the habit with the given name.
func (s *Store) Get(name string) (*Habit, error) {
	row := s.q.QueryRow(`SELECT `+habitColumns+` FROM habits h WHERE h.name = ?`, name)
	h, err := scanHabit(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("getting habit %q: %w", name, err)
	}
	return h, nil
}

// List returns all habits ordered by creation time.
func (s *Store) List() ([]Habit, error) {
	rows, err := s.q.Query(`SELECT ` + habitColumns + ` FROM habits h ORDER BY h.created_at ASC, h.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing habits: %w", err)
	}
	defer rows.Close()
	return scanHabits(rows)
}

// ListByPeriodicity returns the habits with periodicity p, ignoring case.
func (s *Store) ListByPeriodicity(p streak.Periodicity) ([]Habit, error) {
	rows, err := s.q.Query(
		`SELECT `+habitColumns+` FROM habits h
		 WHERE LOWER(h.periodicity) = LOWER(?)
		 ORDER BY h.created_at ASC, h.name ASC`,
		string(p),
	)
	if err != nil {
		return nil, fmt.Errorf("listing %s habits: %w", p, err)
	}
	defer rows.Close()
	return scanHabits(rows)
}

// Count returns the number of habits.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.q.QueryRow(`SELECT COUNT(*) FROM habits`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting habits: %w", err)
	}
	return n, nil
}

// CheckOff records a completion of the habit at the given time.
func (s *Store) CheckOff(habitID string, at time.Time) (*Completion, error) {
	if err := s.requireID(habitID); err != nil {
		return nil, err
	}

	c := &Completion{ID: uuid.NewString(), HabitID: habitID, At: at.Truncate(time.Second)}
	_, err := s.q.Exec(
		`INSERT INTO completions (id, habit_id, completed_at) VALUES (?, ?, ?)`,
		c.ID, c.HabitID, FormatStamp(c.At),
	)
	if err != nil {
		return nil, fmt.Errorf("checking off habit: %w", err)
	}

	logger.Debug("habit checked off", "habit", habitID, "at", c.At)
	return c, nil
}

// CompletionCount returns how many completions the habit has.
func (s *Store) CompletionCount(habitID string) (int, error) {
	var n int
	err := s.q.QueryRow(`SELECT COUNT(*) FROM completions WHERE habit_id = ?`, habitID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting completions: %w", err)
	}
	return n, nil
}

// Completions returns the habit's completions, oldest first. Rows whose
// timestamp cannot be parsed are skipped and logged.
func (s *Store) Completions(habitID string) ([]Completion, error) {
	rows, err := s.q.Query(
		`SELECT id, habit_id, completed_at FROM completions WHERE habit_id = ? ORDER BY completed_at ASC`,
		habitID,
	)
	if err != nil {
		return nil, fmt.Errorf("listing completions: %w", err)
	}
	defer rows.Close()

	var out []Completion
	for rows.Next() {
		var c Completion
		var raw string
		if err := rows.Scan(&c.ID, &c.HabitID, &raw); err != nil {
			return nil, err
		}
		at, err := ParseStamp(raw)
		if err != nil {
			logger.Warn("skipping completion with bad timestamp", "id", c.ID, "habit", c.HabitID, "err", err)
			continue
		}
		c.At = at
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	// Legacy day-first rows do not sort as text.
	slices.SortStableFunc(out, func(a, b Completion) int { return a.At.Compare(b.At) })
	return out, nil
}

// Reset deletes every completion of the habit and returns how many were removed.
func (s *Store) Reset(habitID string) (int64, error) {
	if err := s.requireID(habitID); err != nil {
		return 0, err
	}
	res, err := s.q.Exec(`DELETE FROM completions WHERE habit_id = ?`, habitID)
	if err != nil {
		return 0, fmt.Errorf("resetting habit: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("resetting habit: %w", err)
	}
	logger.Debug("habit reset", "habit", habitID, "removed", n)
	return n, nil
}

// ResetAll deletes the completions of every habit.
func (s *Store) ResetAll() (int64, error) {
	res, err := s.q.Exec(`DELETE FROM completions`)
	if err != nil {
		return 0, fmt.Errorf("resetting all habits: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("resetting all habits: %w", err)
	}
	logger.Debug("all habits reset", "removed", n)
	return n, nil
}

// Delete removes the habit and its completions.
func (s *Store) Delete(habitID string) error {
	err := s.InTx(func(tx *Store) error {
		if _, err := tx.q.Exec(`DELETE FROM completions WHERE habit_id = ?`, habitID); err != nil {
			return fmt.Errorf("deleting completions: %w", err)
		}
		res, err := tx.q.Exec(`DELETE FROM habits WHERE id = ?`, habitID)
		if err != nil {
			return fmt.Errorf("deleting habit: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("deleting habit: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("%w: id %s", ErrNotFound, habitID)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Debug("habit deleted", "habit", habitID)
	return nil
}

// DeleteAll removes every habit and completion and returns how many habits
// were removed.
func (s *Store) DeleteAll() (int64, error) {
	var n int64
	err := s.InTx(func(tx *Store) error {
		if _, err := tx.q.Exec(`DELETE FROM completions`); err != nil {
			return fmt.Errorf("clearing completions: %w", err)
		}
		res, err := tx.q.Exec(`DELETE FROM habits`)
		if err != nil {
			return fmt.Errorf("clearing habits: %w", err)
		}
		n, err = res.RowsAffected()
		if err != nil {
			return fmt.Errorf("clearing habits: %w", err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	logger.Debug("all habits deleted", "removed", n)
	return n, nil
}

// HabitEvents returns the completions of the named habit as streak events.
// An unknown name is ErrNotFound; a habit with no completions yields no events.
// The lookup and the event query share one transaction.
func (s *Store) HabitEvents(name string) ([]streak.Event, error) {
	var events []streak.Event
	err := s.InTx(func(tx *Store) error {
		h, err := tx.Get(name)
		if err != nil {
			return err
		}
		events, err = tx.queryEvents(
			`SELECT c.habit_id, c.completed_at, h.periodicity
			 FROM completions c JOIN habits h ON h.id = c.habit_id
			 WHERE c.habit_id = ?`,
			h.ID,
		)
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// AllEvents returns the completions of every habit as streak events.
func (s *Store) AllEvents() ([]streak.Event, error) {
	return s.queryEvents(
		`SELECT c.habit_id, c.completed_at, h.periodicity
		 FROM completions c JOIN habits h ON h.id = c.habit_id`,
	)
}

func (s *Store) queryEvents(query string, args ...any) ([]streak.Event, error) {
	rows, err := s.q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying completions: %w", err)
	}
	defer rows.Close()

	var events []streak.Event
	for rows.Next() {
		var habitID, raw, periodicity string
		if err := rows.Scan(&habitID, &raw, &periodicity); err != nil {
			return nil, err
		}
		at, err := ParseStamp(raw)
		if err != nil {
			logger.Warn("skipping completion with bad timestamp", "habit", habitID, "err", err)
			continue
		}
		events = append(events, streak.Event{At: at, Periodicity: streak.Periodicity(periodicity)})
	}
	return events, rows.Err()
}

func (s *Store) requireID(habitID string) error {
	var one int
	err := s.q.QueryRow(`SELECT 1 FROM habits WHERE id = ?`, habitID).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: id %s", ErrNotFound, habitID)
	}
	if err != nil {
		return fmt.Errorf("looking up habit: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanHabit(row rowScanner) (*Habit, error) {
	var h Habit
	var periodicity, created string
	if err := row.Scan(&h.ID, &h.Name, &h.Description, &periodicity, &created, &h.Completions); err != nil {
		return nil, err
	}
	h.Periodicity = streak.Periodicity(periodicity)
	if t, err := ParseStamp(created); err == nil {
		h.CreatedAt = t
	} else {
		logger.Warn("habit has bad created_at", "id", h.ID, "err", err)
	}
	return &h, nil
}

func scanHabits(rows *sql.Rows) ([]Habit, error) {
	var habits []Habit
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, *h)
	}
	return habits, rows.Err()
}

func isUniqueViolation(err error) bool {
	var se *sqlite.Error
	return errors.As(err, &se) && se.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE
}
