// Package charts renders the trend view: one time-series chart per
// scale question, switchable with the arrow keys.
package charts

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"assay/internal/assessment"
	"assay/internal/result"
	"assay/internal/screen"
	"assay/internal/series"
	"assay/internal/ui/chart"
	"assay/internal/ui/layout"
	"assay/internal/ui/theme"
)

// ChartsScreen plots one scale question at a time across every
// recorded result of the assessment.
type ChartsScreen struct {
	assessment assessment.Assessment
	results    *result.Repository

	questions []assessment.Question // scale questions only
	index     int
}

var _ screen.Screen = (*ChartsScreen)(nil)
var _ screen.KeyHintProvider = (*ChartsScreen)(nil)

// New creates the charts view. Callers gate on the assessment having
// at least one scale question.
func New(a assessment.Assessment, results *result.Repository) *ChartsScreen {
	return &ChartsScreen{
		assessment: a,
		results:    results,
		questions:  a.ScaleQuestions(),
	}
}

func (s *ChartsScreen) Init() tea.Cmd {
	return nil
}

func (s *ChartsScreen) Title() string {
	return s.assessment.Title + " — Charts"
}

func (s *ChartsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{}
	if len(s.questions) > 1 {
		hints = append(hints, layout.KeyHint{Key: "←/→", Description: "Switch question"})
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
}

func (s *ChartsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "left", "h":
		if s.index > 0 {
			s.index--
		}
	case "right", "l":
		if s.index < len(s.questions)-1 {
			s.index++
		}
	}
	return s, nil
}

func (s *ChartsScreen) View(width, height int) string {
	if len(s.questions) == 0 {
		return theme.Hint.Render("This assessment has no scale questions to chart.")
	}

	q := s.questions[s.index]
	points := series.Build(q, s.results.ListByAssessment(s.assessment.ID))
	lo, hi := series.Domain(q)

	chartWidth := width - 8
	if chartWidth > 72 {
		chartWidth = 72
	}
	if chartWidth < 30 {
		chartWidth = 30
	}
	chartHeight := height - 12
	if chartHeight > 16 {
		chartHeight = 16
	}
	if chartHeight < 8 {
		chartHeight = 8
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", theme.Subtitle.Render(q.Text))
	if len(s.questions) > 1 {
		fmt.Fprintf(&b, "%s\n",
			theme.Hint.Render(fmt.Sprintf("Question %d of %d", s.index+1, len(s.questions))))
	}
	b.WriteString("\n")

	b.WriteString(chart.Render(points, chart.Config{
		Lo:     lo,
		Hi:     hi,
		Width:  chartWidth,
		Height: chartHeight,
	}))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Render(
		fmt.Sprintf("Tracking over %d data %s", len(points), plural(len(points), "point", "points"))))

	return b.String()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
