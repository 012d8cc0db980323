package assessment

import (
	"errors"
	"strings"
)

// Validation errors returned by the repository. The UI treats them as
// "save refused" rather than surfacing them as failures.
var (
	ErrEmptyTitle   = errors.New("assessment title is empty")
	ErrNoQuestions  = errors.New("assessment has no questions with text")
	ErrInvalidScale = errors.New("scale minimum exceeds maximum")
	ErrNotFound     = errors.New("assessment not found")
)

// Draft is the mutable authoring state for an assessment: everything
// except identity and timestamps, which the repository owns.
type Draft struct {
	Title       string
	Description string
	Questions   []Question
}

// normalize trims whitespace, drops questions whose text is empty after
// trimming, and fills in default scale bounds. It does not touch ids.
func (d Draft) normalize() Draft {
	out := Draft{
		Title:       strings.TrimSpace(d.Title),
		Description: strings.TrimSpace(d.Description),
	}
	for _, q := range d.Questions {
		q.Text = strings.TrimSpace(q.Text)
		if q.Text == "" {
			continue
		}
		if q.Type == TypeScale {
			q.ScaleMin, q.ScaleMax = q.Bounds()
		} else {
			q.ScaleMin, q.ScaleMax = 0, 0
		}
		out.Questions = append(out.Questions, q)
	}
	return out
}

// validate checks a normalized draft for persistability.
func (d Draft) validate() error {
	if d.Title == "" {
		return ErrEmptyTitle
	}
	if len(d.Questions) == 0 {
		return ErrNoQuestions
	}
	for _, q := range d.Questions {
		if q.Type == TypeScale && q.ScaleMin > q.ScaleMax {
			return ErrInvalidScale
		}
	}
	return nil
}

// Check reports whether the draft would be accepted by Create or Update.
// Screens use it to gate the save affordance without mutating anything.
func (d Draft) Check() error {
	return d.normalize().validate()
}
