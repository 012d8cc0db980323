package result

import (
	"fmt"
	"testing"

	"assay/internal/store"
)

func newTestRepo(t *testing.T) (*Repository, *store.Memory) {
	t.Helper()
	kv := store.NewMemory()
	var ms int64
	var n int
	repo, err := NewRepository(kv,
		WithClock(func() int64 { ms += 1000; return ms }),
		WithIDSource(func() string { n++; return fmt.Sprintf("r%d", n) }),
	)
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	return repo, kv
}

func TestAppend(t *testing.T) {
	repo, _ := newTestRepo(t)

	res, err := repo.Append("a1", []Response{
		{QuestionID: "q1", Value: Number(6)},
		{QuestionID: "q2", Value: Text("yes")},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if res.ID == "" {
		t.Error("expected assigned id")
	}
	if res.AssessmentID != "a1" {
		t.Errorf("assessmentID = %q, want a1", res.AssessmentID)
	}
	if res.Timestamp == 0 {
		t.Error("expected timestamp set from clock")
	}
	if len(res.Responses) != 2 {
		t.Errorf("responses = %d, want 2", len(res.Responses))
	}
}

func TestListByAssessment(t *testing.T) {
	repo, _ := newTestRepo(t)

	repo.Append("a1", nil)
	repo.Append("a2", nil)
	repo.Append("a1", nil)

	got := repo.ListByAssessment("a1")
	if len(got) != 2 {
		t.Fatalf("results for a1 = %d, want 2", len(got))
	}
	for _, r := range got {
		if r.AssessmentID != "a1" {
			t.Errorf("stray result %q for assessment %q", r.ID, r.AssessmentID)
		}
	}

	if n := repo.CountByAssessment("a2"); n != 1 {
		t.Errorf("count a2 = %d, want 1", n)
	}
	if got := repo.ListByAssessment("a3"); len(got) != 0 {
		t.Errorf("results for unknown assessment = %d, want 0", len(got))
	}
}

func TestDeleteByAssessment(t *testing.T) {
	repo, _ := newTestRepo(t)

	repo.Append("a1", nil)
	repo.Append("a2", nil)
	repo.Append("a1", nil)

	if err := repo.DeleteByAssessment("a1"); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if n := repo.CountByAssessment("a1"); n != 0 {
		t.Errorf("a1 results remaining = %d, want 0", n)
	}
	// Results for other assessments are untouched.
	if n := repo.CountByAssessment("a2"); n != 1 {
		t.Errorf("a2 results = %d, want 1", n)
	}

	// Deleting with no matches is a no-op, not an error.
	if err := repo.DeleteByAssessment("a3"); err != nil {
		t.Errorf("delete unknown: %v", err)
	}
}

func TestRepoPersistenceRoundTrip(t *testing.T) {
	repo, kv := newTestRepo(t)

	res, err := repo.Append("a1", []Response{
		{QuestionID: "q1", Value: Number(0)},
		{QuestionID: "q2", Value: Text("slept fine")},
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	reloaded, err := NewRepository(kv)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	got := reloaded.ListByAssessment("a1")
	if len(got) != 1 {
		t.Fatalf("reloaded results = %d, want 1", len(got))
	}
	if got[0].ID != res.ID || got[0].Timestamp != res.Timestamp {
		t.Errorf("reloaded = %+v, want %+v", got[0], res)
	}
	// Numeric zero survives the round trip as a number.
	v, ok := got[0].Responses[0].Value.Numeric()
	if !ok || v != 0 {
		t.Errorf("q1 value = %v (numeric=%v), want numeric 0", v, ok)
	}
}
