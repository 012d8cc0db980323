// Package taketest implements the fill-out flow: one question at a
// time with a progress indicator, ending in a submit step that records
// a timestamped result.
package taketest

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"assay/internal/assessment"
	"assay/internal/result"
	"assay/internal/router"
	"assay/internal/screen"
	"assay/internal/ui/components"
	"assay/internal/ui/layout"
	"assay/internal/ui/theme"
)

// TakeTestScreen walks the user through every question of one
// assessment. Answers live in memory until submit; backing out with
// Esc records nothing.
type TakeTestScreen struct {
	assessment assessment.Assessment
	results    *result.Repository

	index   int // current question, len(questions) == submit step
	answers map[string]result.Value

	text   components.TextInput
	choice components.Choice
	errMsg string
}

var _ screen.Screen = (*TakeTestScreen)(nil)
var _ screen.KeyHintProvider = (*TakeTestScreen)(nil)

// New starts a fresh run of the given assessment.
func New(a assessment.Assessment, results *result.Repository) *TakeTestScreen {
	s := &TakeTestScreen{
		assessment: a,
		results:    results,
		answers:    make(map[string]result.Value, len(a.Questions)),
	}
	s.loadQuestion()
	return s
}

func (s *TakeTestScreen) Init() tea.Cmd {
	if q, ok := s.current(); ok && q.Type != assessment.TypeYesNo {
		return s.text.Focus()
	}
	return nil
}

func (s *TakeTestScreen) Title() string {
	return s.assessment.Title
}

func (s *TakeTestScreen) KeyHints() []layout.KeyHint {
	if s.onSubmitStep() {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Submit"},
			{Key: "Shift+Tab", Description: "Back"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "Tab", Description: "Skip ahead"},
		{Key: "Shift+Tab", Description: "Back"},
		{Key: "Esc", Description: "Cancel"},
	}
}

func (s *TakeTestScreen) current() (assessment.Question, bool) {
	if s.index < 0 || s.index >= len(s.assessment.Questions) {
		return assessment.Question{}, false
	}
	return s.assessment.Questions[s.index], true
}

func (s *TakeTestScreen) onSubmitStep() bool {
	return s.index >= len(s.assessment.Questions)
}

// loadQuestion rebuilds the input widgets for the current question and
// restores any answer the user already gave on a previous pass.
func (s *TakeTestScreen) loadQuestion() {
	q, ok := s.current()
	if !ok {
		return
	}

	prev, answered := s.answers[q.ID]

	switch q.Type {
	case assessment.TypeScale:
		min, max := q.Bounds()
		s.text = components.NewTextInput(fmt.Sprintf("%d-%d", min, max), true, 4)
	case assessment.TypeText:
		s.text = components.NewTextInput("Type your answer", false, 500)
	case assessment.TypeYesNo:
		s.choice = components.NewChoice([]string{"Yes", "No"})
	}

	if !answered {
		return
	}
	switch q.Type {
	case assessment.TypeYesNo:
		if prev.String() == "yes" {
			s.choice.Preselect(0)
		} else {
			s.choice.Preselect(1)
		}
	default:
		s.text.SetValue(prev.String())
	}
}

func (s *TakeTestScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return s, s.updateInput(msg)
	}

	switch kmsg.String() {
	case "enter":
		if s.onSubmitStep() {
			return s, s.submit()
		}
		// Enter both picks the highlighted yes/no option and advances;
		// Tab advances without picking.
		if q, ok := s.current(); ok && q.Type == assessment.TypeYesNo {
			s.choice.Preselect(s.choice.Cursor)
		}
		return s, s.capture(1)
	case "tab":
		if !s.onSubmitStep() {
			return s, s.capture(1)
		}
		return s, nil
	case "shift+tab":
		if s.index > 0 {
			if !s.onSubmitStep() {
				s.captureValue()
			}
			s.index--
			s.loadQuestion()
			s.errMsg = ""
			return s, s.Init()
		}
		return s, nil
	}

	return s, s.updateInput(msg)
}

func (s *TakeTestScreen) updateInput(msg tea.Msg) tea.Cmd {
	q, ok := s.current()
	if !ok {
		return nil
	}

	var cmd tea.Cmd
	if q.Type == assessment.TypeYesNo {
		s.choice, cmd = s.choice.Update(msg)
	} else {
		s.text, cmd = s.text.Update(msg)
	}
	return cmd
}

// captureValue stores the current widget state into answers, or clears
// the stored answer when the widget is empty.
func (s *TakeTestScreen) captureValue() {
	q, ok := s.current()
	if !ok {
		return
	}

	switch q.Type {
	case assessment.TypeScale:
		n, err := s.text.NumericValue()
		if err != nil {
			delete(s.answers, q.ID)
			return
		}
		s.answers[q.ID] = result.Number(float64(n))
	case assessment.TypeYesNo:
		if v, picked := s.choice.Value(); picked {
			s.answers[q.ID] = result.Text(strings.ToLower(v))
		} else {
			delete(s.answers, q.ID)
		}
	case assessment.TypeText:
		v := s.text.Value()
		if v == "" {
			delete(s.answers, q.ID)
			return
		}
		s.answers[q.ID] = result.Text(v)
	}
}

// capture validates the current answer where needed, stores it, and
// advances. Scale answers outside the question's bounds are refused.
func (s *TakeTestScreen) capture(delta int) tea.Cmd {
	q, _ := s.current()

	if q.Type == assessment.TypeScale && s.text.Value() != "" {
		n, err := s.text.NumericValue()
		min, max := q.Bounds()
		if err != nil || n < min || n > max {
			s.errMsg = fmt.Sprintf("Enter a number between %d and %d.", min, max)
			return nil
		}
	}

	s.captureValue()
	s.errMsg = ""
	s.index += delta
	if s.onSubmitStep() {
		return nil
	}
	s.loadQuestion()
	return s.Init()
}

// submit records the run. Every question must carry a non-empty answer
// before a result is appended.
func (s *TakeTestScreen) submit() tea.Cmd {
	if !result.IsComplete(s.assessment.Questions, s.answers) {
		s.errMsg = "Answer every question before submitting."
		return nil
	}

	responses := make([]result.Response, 0, len(s.assessment.Questions))
	for _, q := range s.assessment.Questions {
		responses = append(responses, result.Response{QuestionID: q.ID, Value: s.answers[q.ID]})
	}
	if _, err := s.results.Append(s.assessment.ID, responses); err != nil {
		s.errMsg = "Could not save the result: " + err.Error()
		return nil
	}
	return router.Pop()
}

func (s *TakeTestScreen) View(width, height int) string {
	var b strings.Builder

	bar := components.ProgressBar{
		Current: s.index + 1,
		Total:   len(s.assessment.Questions) + 1,
		Width:   30,
	}
	if s.onSubmitStep() {
		bar.Current = bar.Total
	}
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if s.onSubmitStep() {
		b.WriteString(s.renderSubmit())
	} else {
		b.WriteString(s.renderQuestion(width))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Danger.Render(s.errMsg))
	}
	return b.String()
}

func (s *TakeTestScreen) renderQuestion(width int) string {
	q, _ := s.current()

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", theme.Body.Render(q.Text))

	switch q.Type {
	case assessment.TypeScale:
		min, max := q.Bounds()
		b.WriteString(s.text.View())
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render(fmt.Sprintf("Scale of %d to %d", min, max)))
	case assessment.TypeYesNo:
		b.WriteString(s.choice.View())
	case assessment.TypeText:
		b.WriteString(s.text.View())
	}

	w := width - 4
	if w > 76 {
		w = 76
	}
	return theme.FocusedCard.Width(w).Render(b.String())
}

func (s *TakeTestScreen) renderSubmit() string {
	answered := 0
	for _, q := range s.assessment.Questions {
		if v, ok := s.answers[q.ID]; ok && !v.IsEmpty() {
			answered++
		}
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Render("Ready to submit?"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%d of %d questions answered.\n", answered, len(s.assessment.Questions))
	if answered < len(s.assessment.Questions) {
		b.WriteString(theme.Hint.Render("Go back with Shift+Tab to finish the rest."))
	} else {
		b.WriteString(theme.Hint.Render("Press Enter to record this result."))
	}
	return b.String()
}
