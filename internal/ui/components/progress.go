package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"assay/internal/ui/theme"
)

// ProgressBar is a horizontal bar with an optional counter label, used
// to show position while filling out an assessment.
type ProgressBar struct {
	Current int
	Total   int
	Width   int
}

// NewProgressBar creates a progress bar over total steps.
func NewProgressBar(current, total, width int) ProgressBar {
	return ProgressBar{Current: current, Total: total, Width: width}
}

// View renders the bar.
func (p ProgressBar) View() string {
	label := fmt.Sprintf("%d/%d  ", p.Current, p.Total)

	barWidth := p.Width - lipgloss.Width(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = barWidth * p.Current / p.Total
	}
	if filled > barWidth {
		filled = barWidth
	}

	bar := lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", barWidth-filled))

	return lipgloss.NewStyle().Foreground(theme.TextDim).Render(label) + bar
}
