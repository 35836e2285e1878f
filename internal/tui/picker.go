// Package tui holds the interactive terminal pieces of habit.
package tui

import (
	"fmt"
	"os"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/ortenszky/Habit-Tracker-Application/internal/ui"
)

// Item is something the picker can list and filter.
type Item interface {
	FilterValue() string
	Title() string
	Description() string
}

// PickerOption configures a Picker.
type PickerOption func(*Picker)

// WithTitle sets the heading displayed above the list.
func WithTitle(title string) PickerOption {
	return func(p *Picker) { p.title = title }
}

// WithHeight sets the maximum number of visible rows.
func WithHeight(h int) PickerOption {
	return func(p *Picker) { p.height = h }
}

// Picker is a fuzzy-filtered list selector built on Bubbletea.
type Picker struct {
	title  string
	height int

	items    []Item
	filtered []match
	query    string
	cursor   int
	offset   int
	chosen   Item
	canceled bool

	termHeight int
}

type match struct {
	item  Item
	score int
}

// NewPicker creates a Picker over items.
func NewPicker(items []Item, opts ...PickerOption) *Picker {
	p := &Picker{height: 10, items: items, termHeight: 24}
	for _, opt := range opts {
		opt(p)
	}
	p.refilter()
	return p
}

// Run shows a picker and returns the chosen item, or nil if the user canceled.
func Run(items []Item, opts ...PickerOption) (Item, error) {
	m, err := tea.NewProgram(NewPicker(items, opts...), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, fmt.Errorf("picker: %w", err)
	}
	p := m.(*Picker)
	if p.canceled {
		return nil, nil
	}
	return p.chosen, nil
}

// IsTTY returns true when stdin is connected to a terminal.
func IsTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

func (p *Picker) Init() tea.Cmd { return nil }

func (p *Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.termHeight = msg.Height
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p, nil
}

func (p *Picker) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		p.canceled = true
		return p, tea.Quit
	case "enter":
		if len(p.filtered) > 0 {
			p.chosen = p.filtered[p.cursor].item
		}
		return p, tea.Quit
	case "up", "ctrl+p":
		p.move(-1)
	case "down", "ctrl+n":
		p.move(1)
	case "backspace":
		if p.query != "" {
			r := []rune(p.query)
			p.query = string(r[:len(r)-1])
			p.refilter()
		}
	default:
		if msg.Type == tea.KeyRunes {
			p.query += string(msg.Runes)
			p.refilter()
		}
	}
	return p, nil
}

func (p *Picker) move(delta int) {
	next := p.cursor + delta
	if next < 0 || next >= len(p.filtered) {
		return
	}
	p.cursor = next
	vis := p.visibleRows()
	switch {
	case p.cursor < p.offset:
		p.offset = p.cursor
	case p.cursor >= p.offset+vis:
		p.offset = p.cursor - vis + 1
	}
}

func (p *Picker) View() string {
	var b strings.Builder

	if p.title != "" {
		b.WriteString("  " + ui.Title.Render(p.title) + "\n\n")
	}

	prompt := lipgloss.NewStyle().Foreground(ui.Ember).Bold(true).Render("> ")
	b.WriteString("  " + prompt + p.query + ui.Muted.Render("▎") + "\n\n")

	if len(p.filtered) == 0 {
		b.WriteString("  " + ui.Muted.Render("No matches") + "\n")
	}
	end := min(p.offset+p.visibleRows(), len(p.filtered))
	for i := p.offset; i < end; i++ {
		b.WriteString(p.renderRow(p.filtered[i].item, i == p.cursor) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(ui.Muted.Render(fmt.Sprintf("  %d/%d · ↑↓ navigate · enter select · esc cancel", len(p.filtered), len(p.items))))
	b.WriteString("\n")
	return b.String()
}

func (p *Picker) visibleRows() int {
	h := p.height
	if h <= 0 || h > p.termHeight-6 {
		h = p.termHeight - 6
	}
	return max(h, 3)
}

func (p *Picker) refilter() {
	p.filtered = p.filtered[:0]
	for _, item := range p.items {
		if ok, score := FuzzyMatch(p.query, item.FilterValue()); ok {
			p.filtered = append(p.filtered, match{item: item, score: score})
		}
	}
	slices.SortStableFunc(p.filtered, func(a, b match) int { return b.score - a.score })
	p.cursor, p.offset = 0, 0
}

func (p *Picker) renderRow(item Item, selected bool) string {
	pointer := "  "
	title := item.Title()
	if selected {
		pointer = ui.Accent.Render(ui.IconArrow + " ")
		title = ui.Accent.Render(title)
	}
	if desc := item.Description(); desc != "" {
		title += "  " + ui.Muted.Render(desc)
	}
	return "  " + pointer + title
}
