// Package resultdetail renders one recorded result question by
// question, with clipboard export of the Markdown rendering.
package resultdetail

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/atotto/clipboard"

	"assay/internal/assessment"
	"assay/internal/export"
	"assay/internal/result"
	"assay/internal/screen"
	"assay/internal/ui/layout"
	"assay/internal/ui/theme"
)

// DetailScreen shows every answer of one result in question order.
type DetailScreen struct {
	assessment assessment.Assessment
	result     result.Result
	flash      string
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

// New creates the detail view for one result.
func New(a assessment.Assessment, r result.Result) *DetailScreen {
	return &DetailScreen{assessment: a, result: r}
}

func (s *DetailScreen) Init() tea.Cmd {
	return nil
}

func (s *DetailScreen) Title() string {
	return s.assessment.Title + " — Result"
}

func (s *DetailScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "X", Description: "Copy as Markdown"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if kmsg.String() == "x" {
		md := export.FormatResult(s.assessment, s.result)
		if err := clipboard.WriteAll(md); err != nil {
			s.flash = "Clipboard unavailable: " + err.Error()
		} else {
			s.flash = "Result copied as Markdown."
		}
	}
	return s, nil
}

func (s *DetailScreen) View(width, height int) string {
	var b strings.Builder

	when := time.UnixMilli(s.result.Timestamp)
	fmt.Fprintf(&b, "%s\n%s\n\n",
		theme.Subtitle.Render(when.Format("Monday, January 2, 2006")),
		theme.Hint.Render(when.Format("3:04 PM")))

	for i, q := range s.assessment.Questions {
		fmt.Fprintf(&b, "%s\n", theme.Body.Render(fmt.Sprintf("%d. %s", i+1, q.Text)))
		b.WriteString("   " + s.renderAnswer(q))
		b.WriteString("\n\n")
	}

	if s.flash != "" {
		b.WriteString(theme.Hint.Render(s.flash))
	}
	return b.String()
}

// renderAnswer mirrors the Markdown export's per-type formatting, with
// a muted placeholder for questions that carry no response.
func (s *DetailScreen) renderAnswer(q assessment.Question) string {
	resp, ok := s.result.ResponseTo(q.ID)
	if !ok || resp.Value.IsEmpty() {
		return theme.Hint.Render("No response")
	}

	switch q.Type {
	case assessment.TypeScale:
		_, max := q.Bounds()
		return theme.Selected.Render(fmt.Sprintf("%s out of %d", resp.Value.String(), max))
	case assessment.TypeYesNo:
		return theme.Selected.Render(export.YesNoLabel(resp.Value))
	default:
		return theme.Selected.Render(resp.Value.String())
	}
}
