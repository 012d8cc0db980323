package result

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"assay/internal/store"
)

// Repository holds submitted results in memory and mirrors every
// mutation into the injected storage slot. Responses handed to Append
// must already have passed IsComplete; the repository does not
// re-validate.
type Repository struct {
	kv    store.KV
	now   func() int64
	newID func() string
	items []Result
}

// Option configures a Repository.
type Option func(*Repository)

// WithClock overrides the millisecond clock. Used by tests.
func WithClock(now func() int64) Option {
	return func(r *Repository) { r.now = now }
}

// WithIDSource overrides the unique-id generator. Used by tests.
func WithIDSource(newID func() string) Option {
	return func(r *Repository) { r.newID = newID }
}

// NewRepository loads the result collection from kv.
func NewRepository(kv store.KV, opts ...Option) (*Repository, error) {
	r := &Repository{
		kv:    kv,
		now:   func() int64 { return time.Now().UnixMilli() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}

	raw, err := kv.Load(store.SlotResults)
	if err != nil {
		return nil, fmt.Errorf("load results: %w", err)
	}
	if raw != nil {
		if err := json.Unmarshal(raw, &r.items); err != nil {
			return nil, fmt.Errorf("decode results: %w", err)
		}
	}
	return r, nil
}

// Append records a new result with a fresh id and the current time.
func (r *Repository) Append(assessmentID string, responses []Response) (Result, error) {
	res := Result{
		ID:           r.newID(),
		AssessmentID: assessmentID,
		Timestamp:    r.now(),
		Responses:    responses,
	}
	r.items = append(r.items, res)

	if err := r.persist(); err != nil {
		return Result{}, err
	}
	return res, nil
}

// List returns all results in submission order.
func (r *Repository) List() []Result {
	out := make([]Result, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the total number of stored results.
func (r *Repository) Count() int {
	return len(r.items)
}

// ListByAssessment returns the results for one assessment. Order is
// unspecified; callers sort as needed.
func (r *Repository) ListByAssessment(assessmentID string) []Result {
	var out []Result
	for _, res := range r.items {
		if res.AssessmentID == assessmentID {
			out = append(out, res)
		}
	}
	return out
}

// CountByAssessment returns how many results exist for an assessment.
func (r *Repository) CountByAssessment(assessmentID string) int {
	n := 0
	for _, res := range r.items {
		if res.AssessmentID == assessmentID {
			n++
		}
	}
	return n
}

// DeleteByAssessment removes every result belonging to the assessment.
// It is the second step of the delete cascade; results for other
// assessments are untouched.
func (r *Repository) DeleteByAssessment(assessmentID string) error {
	kept := r.items[:0]
	removed := false
	for _, res := range r.items {
		if res.AssessmentID == assessmentID {
			removed = true
			continue
		}
		kept = append(kept, res)
	}
	r.items = kept
	if !removed {
		return nil
	}
	return r.persist()
}

func (r *Repository) persist() error {
	raw, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("encode results: %w", err)
	}
	if err := r.kv.Save(store.SlotResults, raw); err != nil {
		return fmt.Errorf("persist results: %w", err)
	}
	return nil
}
