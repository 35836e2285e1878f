package ui

import "github.com/charmbracelet/lipgloss"

// Palette: leafy greens for progress, warm tones for streaks.
var (
	Leaf   = lipgloss.Color("#7BC96F")
	Moss   = lipgloss.Color("#4E7D3A")
	Ember  = lipgloss.Color("#FF8C42")
	Sun    = lipgloss.Color("#FFC857")
	Berry  = lipgloss.Color("#D7263D")
	Sky    = lipgloss.Color("#3A86FF")
	Dim    = lipgloss.Color("#666666")
	Bright = lipgloss.Color("#FFFFFF")

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Leaf)

	Subtitle = lipgloss.NewStyle().
			Foreground(Moss)

	Success = lipgloss.NewStyle().
		Foreground(Leaf)

	Error = lipgloss.NewStyle().
		Foreground(Berry)

	Warning = lipgloss.NewStyle().
		Foreground(Sun)

	Info = lipgloss.NewStyle().
		Foreground(Sky)

	Muted = lipgloss.NewStyle().
		Foreground(Dim)

	Accent = lipgloss.NewStyle().
		Foreground(Ember).
		Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(Moss).
			Bold(true)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Bright)

	// Tag renders a periodicity badge.
	Tag = lipgloss.NewStyle().
		Foreground(Bright).
		Background(Moss).
		Padding(0, 1)
)

const (
	IconHabit    = "🌱"
	IconCheck    = "✅"
	IconFire     = "🔥"
	IconCalendar = "📅"
	IconTrophy   = "🏆"
	IconWarn     = "⚠️ "
	IconError    = "✗ "
	IconOk       = "✓ "
	IconArrow    = "→"
	IconDot      = "·"
)
