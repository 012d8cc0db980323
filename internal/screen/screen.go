package screen

import (
	tea "charm.land/bubbletea/v2"

	"assay/internal/ui/layout"
)

// Screen is one page of the application. The router keeps a stack of
// screens; only the top one receives messages and renders.
type Screen interface {
	// Init returns an initial command when the screen is first pushed.
	Init() tea.Cmd

	// Update handles a message and returns the updated screen plus an
	// optional command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content area (between header and footer).
	View(width, height int) string

	// Title returns the screen name shown in the header.
	Title() string
}

// KeyHintProvider lets a screen replace the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
