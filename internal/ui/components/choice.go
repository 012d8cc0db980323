package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"assay/internal/ui/theme"
)

// Choice is a vertical single-select over a fixed set of options,
// used for yes/no answers and similar small pick lists.
type Choice struct {
	Options  []string
	Selected int // -1 until the user picks or a preset is applied
	Cursor   int
}

// NewChoice creates a choice with nothing selected.
func NewChoice(options []string) Choice {
	return Choice{Options: options, Selected: -1}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Preselect moves cursor and selection to index, ignoring out-of-range
// values. Used when revisiting an already answered question.
func (c *Choice) Preselect(index int) {
	if index < 0 || index >= len(c.Options) {
		return
	}
	c.Cursor = index
	c.Selected = index
}

// Clear removes the current selection.
func (c *Choice) Clear() {
	c.Selected = -1
	c.Cursor = 0
}

// Update handles navigation and selection keys.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		c.Selected = c.Cursor
	}

	return c, nil
}

// Value returns the selected option text, if any.
func (c Choice) Value() (string, bool) {
	if c.Selected < 0 || c.Selected >= len(c.Options) {
		return "", false
	}
	return c.Options[c.Selected], true
}

// View renders the options with cursor and selection markers.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		marker := "( ) "
		if i == c.Selected {
			marker = "(•) "
		}
		line := "  " + marker + opt
		switch {
		case i == c.Cursor:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render("▸ "+line[2:]) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Secondary).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
