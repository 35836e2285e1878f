// Package tips rotates short usage hints shown on the dashboard.
package tips

import "time"

var pool = []string{
	"`habit check <name>` right after you've done it, so the date is right.",
	"`habit check <name> --at 2024-03-01` to record a day you forgot.",
	"`habit streak` to see every habit's longest run side by side.",
	"`habit streak --all` for your best run across all habits.",
	"`habit list -p weekly` to see only your weekly habits.",
	"`habit info <name>` for a habit's history at a glance.",
	"`habit add` with no name opens a short form.",
	"`habit reset <name>` clears a habit's history but keeps the habit.",
	"`habit config set habits.default_periodicity weekly` to change what `add` assumes.",
	"`habit seed` loads example habits if you want something to poke at.",
	"Weekly habits count seven days for every week you keep them going.",
	"Checking off twice on one day still counts as one day.",
}

// All returns the full tip pool.
func All() []string {
	return pool
}

// Daily returns the tip for t's calendar day. It stays the same all day.
func Daily(t time.Time) string {
	return pool[t.YearDay()%len(pool)]
}
