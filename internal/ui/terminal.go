package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

const (
	defaultWidth = 80
	maxWidth     = 120
)

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// Width returns the terminal width clamped to a readable maximum, or a
// default when stdout is not a terminal.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return min(w, maxWidth)
}

// DisableColor renders every style as plain text from now on.
func DisableColor() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// ColorDisabledByEnv reports whether NO_COLOR is set (https://no-color.org).
func ColorDisabledByEnv() bool {
	_, ok := os.LookupEnv("NO_COLOR")
	return ok
}
