// Package home implements the root screen: the assessment list and the
// entry points to every other page.
package home

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"assay/internal/assessment"
	"assay/internal/result"
	"assay/internal/router"
	"assay/internal/screen"
	"assay/internal/screens/authoring"
	"assay/internal/screens/confirm"
	"assay/internal/screens/results"
	"assay/internal/screens/taketest"
	"assay/internal/ui/layout"
	"assay/internal/ui/theme"
)

// HomeScreen lists all assessments and dispatches to the other screens.
// It reads the repositories live on every render, so returning from a
// child screen always shows fresh data.
type HomeScreen struct {
	assessments *assessment.Repository
	results     *result.Repository
	selected    int
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates the home screen.
func New(assessments *assessment.Repository, results *result.Repository) *HomeScreen {
	return &HomeScreen{
		assessments: assessments,
		results:     results,
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return nil
}

func (s *HomeScreen) Title() string {
	return "Assessments"
}

func (s *HomeScreen) KeyHints() []layout.KeyHint {
	if s.assessments.Count() == 0 {
		return []layout.KeyHint{
			{Key: "N", Description: "New assessment"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Take test"},
		{Key: "R", Description: "Results"},
		{Key: "N", Description: "New"},
		{Key: "E", Description: "Edit"},
		{Key: "D", Description: "Delete"},
	}
}

// current returns the selected assessment, clamping the cursor after
// deletes.
func (s *HomeScreen) current() (assessment.Assessment, bool) {
	list := s.assessments.List()
	if len(list) == 0 {
		return assessment.Assessment{}, false
	}
	if s.selected >= len(list) {
		s.selected = len(list) - 1
	}
	return list[s.selected], true
}

func (s *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < s.assessments.Count()-1 {
			s.selected++
		}
	case "n":
		return s, router.Push(authoring.New(s.assessments, nil))
	case "enter", "t":
		if a, ok := s.current(); ok {
			return s, router.Push(taketest.New(a, s.results))
		}
	case "r":
		if a, ok := s.current(); ok {
			return s, router.Push(results.New(a, s.results))
		}
	case "e":
		if a, ok := s.current(); ok {
			return s, router.Push(authoring.New(s.assessments, &a))
		}
	case "d":
		if a, ok := s.current(); ok {
			prompt := fmt.Sprintf("Delete %q? This will also delete all associated test results.", a.Title)
			return s, router.Push(confirm.New(prompt, func() {
				// Explicit two-step cascade: the assessment repository
				// does not know about results.
				if err := s.assessments.Delete(a.ID); err != nil {
					return
				}
				s.results.DeleteByAssessment(a.ID)
			}))
		}
	}
	return s, nil
}

func (s *HomeScreen) View(width, height int) string {
	list := s.assessments.List()
	if len(list) == 0 {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render("\n\n  No assessments yet. Press N to build your first questionnaire.")
	}
	if s.selected >= len(list) {
		s.selected = len(list) - 1
	}

	var b strings.Builder
	b.WriteString("\n")
	for i, a := range list {
		b.WriteString(s.renderCard(a, i == s.selected, width))
		b.WriteString("\n")
	}
	return b.String()
}

func (s *HomeScreen) renderCard(a assessment.Assessment, selected bool, width int) string {
	titleStyle := theme.Unselected.Bold(true)
	cardStyle := theme.Card
	if selected {
		titleStyle = theme.Selected
		cardStyle = theme.FocusedCard
	}

	nResults := s.results.CountByAssessment(a.ID)
	meta := fmt.Sprintf("%d %s · %d %s · updated %s",
		len(a.Questions), plural("question", len(a.Questions)),
		nResults, plural("result", nResults),
		time.UnixMilli(a.UpdatedAt).Format("Jan 02, 2006"))

	lines := []string{titleStyle.Render(a.Title)}
	if a.Description != "" {
		lines = append(lines, theme.Body.Render(a.Description))
	}
	lines = append(lines, theme.Subtitle.Render(meta))

	card := cardStyle.Width(width - 6).Render(strings.Join(lines, "\n"))
	return lipgloss.NewStyle().PaddingLeft(2).Render(card)
}

func plural(word string, n int) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
