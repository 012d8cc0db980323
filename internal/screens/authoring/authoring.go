// Package authoring implements the create/edit form for an assessment.
// The form holds draft state only; nothing is persisted until the user
// saves, and Esc discards the draft without committing anything.
package authoring

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"

	"assay/internal/assessment"
	"assay/internal/router"
	"assay/internal/screen"
	"assay/internal/ui/components"
	"assay/internal/ui/layout"
	"assay/internal/ui/theme"
)

// slotKind identifies a focusable part of the form.
type slotKind int

const (
	slotTitle slotKind = iota
	slotDesc
	slotQText
	slotQType
	slotQMin
	slotQMax
)

// slot is one focus target. q indexes the question for question slots.
type slot struct {
	kind slotKind
	q    int
}

// questionForm is the editable state of one question row.
type questionForm struct {
	id    string // empty for questions added this session
	text  components.TextInput
	qtype assessment.QuestionType
	min   components.TextInput
	max   components.TextInput
}

// AuthoringScreen is the assessment create/edit form.
type AuthoringScreen struct {
	repo    *assessment.Repository
	editing *assessment.Assessment // nil when creating

	title     components.TextInput
	desc      components.TextInput
	questions []questionForm

	focusKind slotKind
	focusQ    int
	errMsg    string
}

var _ screen.Screen = (*AuthoringScreen)(nil)
var _ screen.KeyHintProvider = (*AuthoringScreen)(nil)

// New creates the form, prefilled from editing when not nil.
func New(repo *assessment.Repository, editing *assessment.Assessment) *AuthoringScreen {
	s := &AuthoringScreen{
		repo:      repo,
		editing:   editing,
		title:     components.NewTextInput("e.g. Daily Mood Check", false, 80),
		desc:      components.NewTextInput("What this assessment tracks", false, 200),
		focusKind: slotTitle,
	}

	if editing != nil {
		s.title.SetValue(editing.Title)
		s.desc.SetValue(editing.Description)
		for _, q := range editing.Questions {
			s.questions = append(s.questions, newQuestionForm(q))
		}
	}
	return s
}

func newQuestionForm(q assessment.Question) questionForm {
	qf := questionForm{
		id:    q.ID,
		text:  components.NewTextInput("Question text", false, 200),
		qtype: q.Type,
		min:   components.NewTextInput("1", true, 4),
		max:   components.NewTextInput("10", true, 4),
	}
	qf.text.SetValue(q.Text)
	if q.Type == assessment.TypeScale {
		min, max := q.Bounds()
		qf.min.SetValue(strconv.Itoa(min))
		qf.max.SetValue(strconv.Itoa(max))
	}
	return qf
}

func (s *AuthoringScreen) Init() tea.Cmd {
	return s.applyFocus()
}

func (s *AuthoringScreen) Title() string {
	if s.editing != nil {
		return "Edit Assessment"
	}
	return "New Assessment"
}

func (s *AuthoringScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Ctrl+A", Description: "Add question"},
		{Key: "Ctrl+D", Description: "Remove question"},
		{Key: "Ctrl+S", Description: "Save"},
		{Key: "Esc", Description: "Discard"},
	}
}

// slots returns the focus targets in visual order for the current form
// shape. Scale questions contribute min/max slots, others don't.
func (s *AuthoringScreen) slots() []slot {
	out := []slot{{kind: slotTitle}, {kind: slotDesc}}
	for i, qf := range s.questions {
		out = append(out, slot{slotQText, i}, slot{slotQType, i})
		if qf.qtype == assessment.TypeScale {
			out = append(out, slot{slotQMin, i}, slot{slotQMax, i})
		}
	}
	return out
}

func (s *AuthoringScreen) focusIndex() int {
	for i, sl := range s.slots() {
		if sl.kind == s.focusKind && sl.q == s.focusQ {
			return i
		}
	}
	return 0
}

func (s *AuthoringScreen) moveFocus(delta int) tea.Cmd {
	slots := s.slots()
	i := s.focusIndex() + delta
	if i < 0 {
		i = 0
	}
	if i >= len(slots) {
		i = len(slots) - 1
	}
	s.focusKind = slots[i].kind
	s.focusQ = slots[i].q
	return s.applyFocus()
}

// applyFocus blurs every input and focuses the one under the cursor.
func (s *AuthoringScreen) applyFocus() tea.Cmd {
	s.title.Blur()
	s.desc.Blur()
	for i := range s.questions {
		s.questions[i].text.Blur()
		s.questions[i].min.Blur()
		s.questions[i].max.Blur()
	}

	switch s.focusKind {
	case slotTitle:
		return s.title.Focus()
	case slotDesc:
		return s.desc.Focus()
	case slotQText:
		return s.questions[s.focusQ].text.Focus()
	case slotQMin:
		return s.questions[s.focusQ].min.Focus()
	case slotQMax:
		return s.questions[s.focusQ].max.Focus()
	}
	return nil // type selector has no input to focus
}

func (s *AuthoringScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, isKey := msg.(tea.KeyMsg)
	if !isKey {
		return s, s.updateFocusedInput(msg)
	}

	switch kmsg.String() {
	case "tab", "down", "enter":
		if s.focusKind == slotQType && kmsg.String() == "enter" {
			s.cycleType(1)
			return s, nil
		}
		return s, s.moveFocus(1)
	case "shift+tab", "up":
		return s, s.moveFocus(-1)
	case "left", "right":
		if s.focusKind == slotQType {
			if kmsg.String() == "left" {
				s.cycleType(-1)
			} else {
				s.cycleType(1)
			}
			return s, nil
		}
	case "ctrl+a":
		return s, s.addQuestion()
	case "ctrl+d":
		s.removeQuestion()
		return s, s.applyFocus()
	case "ctrl+s":
		return s, s.save()
	}

	return s, s.updateFocusedInput(msg)
}

func (s *AuthoringScreen) updateFocusedInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch s.focusKind {
	case slotTitle:
		s.title, cmd = s.title.Update(msg)
	case slotDesc:
		s.desc, cmd = s.desc.Update(msg)
	case slotQText:
		s.questions[s.focusQ].text, cmd = s.questions[s.focusQ].text.Update(msg)
	case slotQMin:
		s.questions[s.focusQ].min, cmd = s.questions[s.focusQ].min.Update(msg)
	case slotQMax:
		s.questions[s.focusQ].max, cmd = s.questions[s.focusQ].max.Update(msg)
	}
	return cmd
}

// cycleType steps the focused question's type through the closed set,
// keeping the scale bounds inputs around in case the user cycles back.
func (s *AuthoringScreen) cycleType(delta int) {
	types := assessment.AllTypes()
	qf := &s.questions[s.focusQ]
	for i, t := range types {
		if t == qf.qtype {
			qf.qtype = types[(i+delta+len(types))%len(types)]
			return
		}
	}
	qf.qtype = types[0]
}

func (s *AuthoringScreen) addQuestion() tea.Cmd {
	qf := newQuestionForm(assessment.Question{
		Type:     assessment.TypeScale,
		ScaleMin: assessment.DefaultScaleMin,
		ScaleMax: assessment.DefaultScaleMax,
	})
	s.questions = append(s.questions, qf)
	s.focusKind = slotQText
	s.focusQ = len(s.questions) - 1
	return s.applyFocus()
}

func (s *AuthoringScreen) removeQuestion() {
	if s.focusKind == slotTitle || s.focusKind == slotDesc || len(s.questions) == 0 {
		return
	}
	i := s.focusQ
	s.questions = append(s.questions[:i], s.questions[i+1:]...)
	if len(s.questions) == 0 {
		s.focusKind = slotTitle
		s.focusQ = 0
		return
	}
	if i >= len(s.questions) {
		i = len(s.questions) - 1
	}
	s.focusKind = slotQText
	s.focusQ = i
}

// draft assembles the current form state. Unparseable bounds become
// zero and pick up the defaults during normalization.
func (s *AuthoringScreen) draft() assessment.Draft {
	d := assessment.Draft{
		Title:       s.title.Value(),
		Description: s.desc.Value(),
	}
	for _, qf := range s.questions {
		q := assessment.Question{
			ID:   qf.id,
			Text: qf.text.Value(),
			Type: qf.qtype,
		}
		if qf.qtype == assessment.TypeScale {
			q.ScaleMin, _ = qf.min.NumericValue()
			q.ScaleMax, _ = qf.max.NumericValue()
		}
		d.Questions = append(d.Questions, q)
	}
	return d
}

func (s *AuthoringScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Subtitle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(s.title.View())
	b.WriteString("\n\n")
	b.WriteString(theme.Subtitle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(s.desc.View())
	b.WriteString("\n")

	if len(s.questions) == 0 {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("No questions yet. Press Ctrl+A to add one."))
		b.WriteString("\n")
	}

	for i := range s.questions {
		b.WriteString("\n")
		b.WriteString(s.renderQuestion(i, width))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Danger.Render(s.errMsg))
		b.WriteString("\n")
	}

	return b.String()
}

func (s *AuthoringScreen) renderQuestion(i int, width int) string {
	qf := &s.questions[i]

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", theme.Subtitle.Render(fmt.Sprintf("Question %d", i+1)))
	b.WriteString(qf.text.View())
	b.WriteString("\n")

	typeLabel := fmt.Sprintf("Type: ‹ %s ›", qf.qtype.DisplayName())
	if s.focusKind == slotQType && s.focusQ == i {
		b.WriteString(theme.Selected.Render(typeLabel))
	} else {
		b.WriteString(theme.Unselected.Render(typeLabel))
	}

	if qf.qtype == assessment.TypeScale {
		b.WriteString("\n")
		fmt.Fprintf(&b, "Min %s  Max %s", qf.min.View(), qf.max.View())
	}

	card := theme.Card
	if s.focusQ == i && s.focusKind != slotTitle && s.focusKind != slotDesc {
		card = theme.FocusedCard
	}
	w := width - 4
	if w > 76 {
		w = 76
	}
	return card.Width(w).Render(b.String())
}

// save validates and persists the draft. A refused save keeps the form
// open with a hint; it never partially commits.
func (s *AuthoringScreen) save() tea.Cmd {
	d := s.draft()

	var err error
	if s.editing != nil {
		_, err = s.repo.Update(s.editing.ID, d)
	} else {
		_, err = s.repo.Create(d)
	}

	switch {
	case err == nil:
		return router.Pop()
	case errors.Is(err, assessment.ErrEmptyTitle):
		s.errMsg = "Give the assessment a title before saving."
	case errors.Is(err, assessment.ErrNoQuestions):
		s.errMsg = "Add at least one question with text before saving."
	case errors.Is(err, assessment.ErrInvalidScale):
		s.errMsg = "Scale minimum must not exceed maximum."
	default:
		s.errMsg = err.Error()
	}
	return nil
}
