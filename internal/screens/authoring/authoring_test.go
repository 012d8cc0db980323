package authoring

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"assay/internal/assessment"
	"assay/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

func testRepo(t *testing.T) *assessment.Repository {
	t.Helper()
	repo, err := assessment.NewRepository(store.NewMemory())
	if err != nil {
		t.Fatal(err)
	}
	return repo
}

func typeText(s *AuthoringScreen, text string) {
	for _, r := range text {
		s.Update(keyPress(r))
	}
}

func TestSaveWithoutTitleIsRefused(t *testing.T) {
	repo := testRepo(t)
	s := New(repo, nil)
	s.Init()

	s.Update(ctrl('s'))

	if repo.Count() != 0 {
		t.Errorf("Count = %d, want 0", repo.Count())
	}
	if s.errMsg == "" {
		t.Error("expected an error message for a missing title")
	}
}

func TestSaveWithoutQuestionsIsRefused(t *testing.T) {
	repo := testRepo(t)
	s := New(repo, nil)
	s.Init()

	typeText(s, "Mood")
	s.Update(ctrl('s'))

	if repo.Count() != 0 {
		t.Errorf("Count = %d, want 0", repo.Count())
	}
	if s.errMsg == "" {
		t.Error("expected an error message for zero questions")
	}
}

func TestCreateFlowPersists(t *testing.T) {
	repo := testRepo(t)
	s := New(repo, nil)
	s.Init()

	typeText(s, "Mood")
	s.Update(ctrl('a')) // add a question, focus lands on its text
	typeText(s, "How do you feel?")
	s.Update(ctrl('s'))

	if s.errMsg != "" {
		t.Fatalf("unexpected error: %s", s.errMsg)
	}
	if repo.Count() != 1 {
		t.Fatalf("Count = %d, want 1", repo.Count())
	}
	a := repo.List()[0]
	if a.Title != "Mood" {
		t.Errorf("Title = %q, want %q", a.Title, "Mood")
	}
	if len(a.Questions) != 1 || a.Questions[0].Text != "How do you feel?" {
		t.Fatalf("Questions = %+v, want one question", a.Questions)
	}
	min, max := a.Questions[0].Bounds()
	if min != 1 || max != 10 {
		t.Errorf("Bounds = %d..%d, want 1..10", min, max)
	}
}

func TestEditPreservesIdentity(t *testing.T) {
	repo := testRepo(t)
	created, err := repo.Create(assessment.Draft{
		Title: "Mood",
		Questions: []assessment.Question{
			{Text: "How do you feel?", Type: assessment.TypeScale},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	s := New(repo, &created)
	s.Init()
	typeText(s, " Check") // append to the prefilled title
	s.Update(ctrl('s'))

	if s.errMsg != "" {
		t.Fatalf("unexpected error: %s", s.errMsg)
	}
	got, err := repo.Get(created.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Title != "Mood Check" {
		t.Errorf("Title = %q, want %q", got.Title, "Mood Check")
	}
	if got.Questions[0].ID != created.Questions[0].ID {
		t.Error("question id should survive an edit")
	}
}

func TestRemoveLastQuestionMovesFocusToTitle(t *testing.T) {
	repo := testRepo(t)
	s := New(repo, nil)
	s.Init()

	s.Update(ctrl('a'))
	s.Update(ctrl('d'))

	if len(s.questions) != 0 {
		t.Errorf("questions = %d, want 0", len(s.questions))
	}
	if s.focusKind != slotTitle {
		t.Errorf("focus = %v, want title", s.focusKind)
	}
}

func TestTypeCycleShowsScaleBounds(t *testing.T) {
	repo := testRepo(t)
	s := New(repo, nil)
	s.Init()
	s.Update(ctrl('a'))

	if got := len(s.slots()); got != 6 {
		t.Fatalf("slots = %d, want 6 (title, desc, text, type, min, max)", got)
	}

	// Move to the type selector and cycle away from scale.
	s.focusKind = slotQType
	s.focusQ = 0
	s.Update(tea.KeyPressMsg{Code: tea.KeyRight})

	if got := len(s.slots()); got != 4 {
		t.Errorf("slots = %d, want 4 after leaving scale type", got)
	}
}
