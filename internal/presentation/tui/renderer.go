package tui

import (
	"os"

	"github.com/charmbracelet/glamour"
	"golang.org/x/term"
)

// NewRenderer returns a function that renders markdown using glamour.
// It uses auto style detection (light/dark background) by default.
func NewRenderer() func(string) (string, error) {
	r, _ := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)

	return func(markdown string) (string, error) {
		return r.Render(markdown)
	}
}

// IsInteractive reports whether stdout is a terminal.
// Non-interactive output (pipes, redirects) should receive the raw document
// instead of ANSI-styled text.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}
