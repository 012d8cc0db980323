// Package results implements the result history list for one
// assessment: newest first, with entry points to the detail view, the
// charts view, and clipboard export.
package results

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"

	"assay/internal/assessment"
	"assay/internal/export"
	"assay/internal/result"
	"assay/internal/router"
	"assay/internal/screen"
	"assay/internal/screens/charts"
	"assay/internal/screens/resultdetail"
	"assay/internal/ui/layout"
	"assay/internal/ui/theme"
)

// ResultsScreen lists every recorded result of one assessment.
type ResultsScreen struct {
	assessment assessment.Assessment
	results    *result.Repository

	selected int
	flash    string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the history list for the given assessment.
func New(a assessment.Assessment, results *result.Repository) *ResultsScreen {
	return &ResultsScreen{assessment: a, results: results}
}

func (s *ResultsScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultsScreen) Title() string {
	return s.assessment.Title + " — Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "↑/↓", Description: "Select"},
		{Key: "Enter", Description: "View"},
	}
	if len(s.assessment.ScaleQuestions()) > 0 {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Charts"})
	}
	hints = append(hints,
		layout.KeyHint{Key: "X", Description: "Copy all"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
	return hints
}

// ordered returns the results newest first. The repository is the
// source of truth so a run recorded after this screen was pushed still
// shows up.
func (s *ResultsScreen) ordered() []result.Result {
	return result.SortedNewestFirst(s.results.ListByAssessment(s.assessment.ID))
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}
	s.flash = ""

	ordered := s.ordered()

	switch kmsg.String() {
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
	case "down", "j":
		if s.selected < len(ordered)-1 {
			s.selected++
		}
	case "enter":
		if s.selected < len(ordered) {
			return s, router.Push(resultdetail.New(s.assessment, ordered[s.selected]))
		}
	case "c":
		if len(s.assessment.ScaleQuestions()) > 0 && len(ordered) > 0 {
			return s, router.Push(charts.New(s.assessment, s.results))
		}
	case "x":
		if len(ordered) > 0 {
			md := export.FormatResults(s.assessment, ordered)
			if err := clipboard.WriteAll(md); err != nil {
				s.flash = "Clipboard unavailable: " + err.Error()
			} else {
				s.flash = "All results copied as Markdown."
			}
		}
	}
	return s, nil
}

func (s *ResultsScreen) View(width, height int) string {
	ordered := s.ordered()

	if len(ordered) == 0 {
		return theme.Hint.Render("No results yet. Take the test once and they show up here.")
	}
	if s.selected >= len(ordered) {
		s.selected = len(ordered) - 1
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n",
		theme.Subtitle.Render(fmt.Sprintf("%d recorded", len(ordered))))

	for i, r := range ordered {
		b.WriteString(s.renderRow(i, r, width))
		b.WriteString("\n")
	}

	if s.flash != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(s.flash))
	}
	return b.String()
}

// renderRow shows the result timestamp plus a preview of the first
// scale answer, which is usually the number the user cares about.
func (s *ResultsScreen) renderRow(i int, r result.Result, width int) string {
	when := time.UnixMilli(r.Timestamp).Format("Jan 2, 2006 3:04 PM")

	preview := ""
	if scales := s.assessment.ScaleQuestions(); len(scales) > 0 {
		q := scales[0]
		if resp, ok := r.ResponseTo(q.ID); ok {
			if n, numeric := resp.Value.Numeric(); numeric {
				_, max := q.Bounds()
				preview = fmt.Sprintf("  %s: %s/%d", q.Text, strconv.FormatFloat(n, 'f', -1, 64), max)
			}
		}
	}

	line := when + preview
	if i == s.selected {
		return theme.Selected.Render("▸ " + line)
	}
	return theme.Unselected.Render("  " + line)
}
