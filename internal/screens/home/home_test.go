package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"assay/internal/assessment"
	"assay/internal/result"
	"assay/internal/router"
	"assay/internal/screens/authoring"
	"assay/internal/screens/confirm"
	"assay/internal/screens/taketest"
	"assay/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testRepos(t *testing.T) (*assessment.Repository, *result.Repository) {
	t.Helper()
	kv := store.NewMemory()
	assessments, err := assessment.NewRepository(kv)
	if err != nil {
		t.Fatal(err)
	}
	results, err := result.NewRepository(kv)
	if err != nil {
		t.Fatal(err)
	}
	return assessments, results
}

func seedAssessment(t *testing.T, repo *assessment.Repository) assessment.Assessment {
	t.Helper()
	a, err := repo.Create(assessment.Draft{
		Title: "Daily Mood",
		Questions: []assessment.Question{
			{Text: "How do you feel?", Type: assessment.TypeScale},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestEmptyStateView(t *testing.T) {
	assessments, results := testRepos(t)
	s := New(assessments, results)

	view := s.View(80, 24)
	if !strings.Contains(view, "No assessments yet") {
		t.Errorf("expected empty state, got:\n%s", view)
	}
}

func TestNewKeyPushesAuthoring(t *testing.T) {
	assessments, results := testRepos(t)
	s := New(assessments, results)

	_, cmd := s.Update(keyPress('n'))
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushMsg)
	if !ok {
		t.Fatalf("expected PushMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*authoring.AuthoringScreen); !ok {
		t.Errorf("expected authoring screen, got %T", msg.Screen)
	}
}

func TestEnterPushesTakeTest(t *testing.T) {
	assessments, results := testRepos(t)
	seedAssessment(t, assessments)
	s := New(assessments, results)

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushMsg)
	if !ok {
		t.Fatalf("expected PushMsg, got %T", cmd())
	}
	if _, ok := msg.Screen.(*taketest.TakeTestScreen); !ok {
		t.Errorf("expected take-test screen, got %T", msg.Screen)
	}
}

func TestDeleteCascadesToResults(t *testing.T) {
	assessments, results := testRepos(t)
	a := seedAssessment(t, assessments)
	if _, err := results.Append(a.ID, []result.Response{
		{QuestionID: a.Questions[0].ID, Value: result.Number(5)},
	}); err != nil {
		t.Fatal(err)
	}

	s := New(assessments, results)
	_, cmd := s.Update(keyPress('d'))
	if cmd == nil {
		t.Fatal("expected a push command")
	}
	msg, ok := cmd().(router.PushMsg)
	if !ok {
		t.Fatalf("expected PushMsg, got %T", cmd())
	}
	prompt, ok := msg.Screen.(*confirm.ConfirmScreen)
	if !ok {
		t.Fatalf("expected confirm screen, got %T", msg.Screen)
	}

	// Confirming runs the delete and removes the history with it.
	prompt.Update(keyPress('y'))

	if assessments.Count() != 0 {
		t.Errorf("assessments.Count = %d, want 0", assessments.Count())
	}
	if results.CountByAssessment(a.ID) != 0 {
		t.Errorf("results for deleted assessment = %d, want 0", results.CountByAssessment(a.ID))
	}
}

func TestCancelKeepsEverything(t *testing.T) {
	assessments, results := testRepos(t)
	a := seedAssessment(t, assessments)

	s := New(assessments, results)
	_, cmd := s.Update(keyPress('d'))
	msg := cmd().(router.PushMsg)
	prompt := msg.Screen.(*confirm.ConfirmScreen)

	prompt.Update(keyPress('n'))

	if assessments.Count() != 1 {
		t.Errorf("assessments.Count = %d, want 1", assessments.Count())
	}
	if _, err := assessments.Get(a.ID); err != nil {
		t.Errorf("Get after cancel: %v", err)
	}
}
