// Package confirm implements the blocking yes/no prompt shown before
// destructive actions.
package confirm

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"assay/internal/router"
	"assay/internal/screen"
	"assay/internal/ui/layout"
	"assay/internal/ui/theme"
)

// ConfirmScreen asks a yes/no question. On yes it runs the action
// synchronously, then pops itself either way.
type ConfirmScreen struct {
	prompt string
	onYes  func()
}

var _ screen.Screen = (*ConfirmScreen)(nil)
var _ screen.KeyHintProvider = (*ConfirmScreen)(nil)

// New creates a confirmation screen.
func New(prompt string, onYes func()) *ConfirmScreen {
	return &ConfirmScreen{prompt: prompt, onYes: onYes}
}

func (s *ConfirmScreen) Init() tea.Cmd {
	return nil
}

func (s *ConfirmScreen) Title() string {
	return "Confirm"
}

func (s *ConfirmScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Y", Description: "Confirm"},
		{Key: "N", Description: "Cancel"},
	}
}

func (s *ConfirmScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "y", "Y":
		if s.onYes != nil {
			s.onYes()
		}
		return s, router.Pop()
	case "n", "N", "esc":
		return s, router.Pop()
	}
	return s, nil
}

func (s *ConfirmScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render(s.prompt))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Y to confirm, N to cancel"))
	return b.String()
}
