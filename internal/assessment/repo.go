package assessment

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"assay/internal/store"
)

// Repository holds the assessment collection in memory and mirrors every
// mutation into the injected storage slot. It is not safe for concurrent
// use; the application is single-threaded by construction.
type Repository struct {
	kv    store.KV
	now   func() int64
	newID func() string
	items []Assessment
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

// NewRepository loads the assessment collection from kv.
func NewRepository(kv store.KV, opts ...Option) (*Repository, error) {
	r := &Repository{
		kv:    kv,
		now:   func() int64 { return time.Now().UnixMilli() },
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(r)
	}

	raw, err := kv.Load(store.SlotAssessments)
	if err != nil {
		return nil, fmt.Errorf("load assessments: %w", err)
	}
	if raw != nil {
		if err := json.Unmarshal(raw, &r.items); err != nil {
			return nil, fmt.Errorf("decode assessments: %w", err)
		}
	}
	return r, nil
}

// List returns all assessments in creation order.
func (r *Repository) List() []Assessment {
	out := make([]Assessment, len(r.items))
	copy(out, r.items)
	return out
}

// Count returns the number of stored assessments.
func (r *Repository) Count() int {
	return len(r.items)
}

// Get returns the assessment with the given id.
func (r *Repository) Get(id string) (Assessment, error) {
	for _, a := range r.items {
		if a.ID == id {
			return a, nil
		}
	}
	return Assessment{}, ErrNotFound
}

// Create validates the draft and appends a new assessment with a fresh
// id and CreatedAt = UpdatedAt = now. The collection is unchanged when
// validation fails.
func (r *Repository) Create(d Draft) (Assessment, error) {
	d = d.normalize()
	if err := d.validate(); err != nil {
		return Assessment{}, err
	}

	now := r.now()
	a := Assessment{
		ID:          r.newID(),
		Title:       d.Title,
		Description: d.Description,
		Questions:   r.withQuestionIDs(d.Questions),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.items = append(r.items, a)

	if err := r.persist(); err != nil {
		return Assessment{}, err
	}
	return a, nil
}

// Update replaces title, description, and questions wholesale, keeping
// the original id and CreatedAt and refreshing UpdatedAt.
func (r *Repository) Update(id string, d Draft) (Assessment, error) {
	d = d.normalize()
	if err := d.validate(); err != nil {
		return Assessment{}, err
	}

	for i, a := range r.items {
		if a.ID != id {
			continue
		}
		a.Title = d.Title
		a.Description = d.Description
		a.Questions = r.withQuestionIDs(d.Questions)
		a.UpdatedAt = r.now()
		r.items[i] = a

		if err := r.persist(); err != nil {
			return Assessment{}, err
		}
		return a, nil
	}
	return Assessment{}, ErrNotFound
}

// Delete removes the assessment. It does not touch test results: the
// caller cascades by calling the result repository's DeleteByAssessment.
func (r *Repository) Delete(id string) error {
	for i, a := range r.items {
		if a.ID != id {
			continue
		}
		r.items = append(r.items[:i], r.items[i+1:]...)
		return r.persist()
	}
	return ErrNotFound
}

// withQuestionIDs assigns ids to questions added during authoring.
// Questions carried over from an existing assessment keep theirs so
// past responses stay attached.
func (r *Repository) withQuestionIDs(qs []Question) []Question {
	out := make([]Question, len(qs))
	copy(out, qs)
	for i := range out {
		if out[i].ID == "" {
			out[i].ID = r.newID()
		}
	}
	return out
}

func (r *Repository) persist() error {
	raw, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("encode assessments: %w", err)
	}
	if err := r.kv.Save(store.SlotAssessments, raw); err != nil {
		return fmt.Errorf("persist assessments: %w", err)
	}
	return nil
}
