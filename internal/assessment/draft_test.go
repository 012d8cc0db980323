package assessment

import (
	"errors"
	"testing"
)

func TestDraftCheck(t *testing.T) {
	tests := []struct {
		name    string
		draft   Draft
		wantErr error
	}{
		{
			name: "valid",
			draft: Draft{
				Title:     "Mood",
				Questions: []Question{{Text: "How are you?", Type: TypeScale}},
			},
			wantErr: nil,
		},
		{
			name: "whitespace title",
			draft: Draft{
				Title:     "  ",
				Questions: []Question{{Text: "How are you?", Type: TypeScale}},
			},
			wantErr: ErrEmptyTitle,
		},
		{
			name: "all questions empty after trimming",
			draft: Draft{
				Title:     "Mood",
				Questions: []Question{{Text: "   ", Type: TypeText}},
			},
			wantErr: ErrNoQuestions,
		},
		{
			name:    "no questions at all",
			draft:   Draft{Title: "Mood"},
			wantErr: ErrNoQuestions,
		},
		{
			name: "inverted scale bounds",
			draft: Draft{
				Title:     "Mood",
				Questions: []Question{{Text: "Energy?", Type: TypeScale, ScaleMin: 7, ScaleMax: 3}},
			},
			wantErr: ErrInvalidScale,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.draft.Check()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Check() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestNormalizeDropsEmptyQuestions(t *testing.T) {
	d := Draft{
		Title: " Sleep ",
		Questions: []Question{
			{ID: "q1", Text: "  Hours slept?  ", Type: TypeScale},
			{ID: "q2", Text: "   ", Type: TypeText},
			{ID: "q3", Text: "Dreams?", Type: TypeText},
		},
	}

	n := d.normalize()
	if n.Title != "Sleep" {
		t.Errorf("title = %q, want %q", n.Title, "Sleep")
	}
	if len(n.Questions) != 2 {
		t.Fatalf("questions = %d, want 2", len(n.Questions))
	}
	if n.Questions[0].ID != "q1" || n.Questions[1].ID != "q3" {
		t.Errorf("kept ids = %q, %q; want q1, q3", n.Questions[0].ID, n.Questions[1].ID)
	}
	if n.Questions[0].Text != "Hours slept?" {
		t.Errorf("text = %q, want trimmed", n.Questions[0].Text)
	}
}

func TestNormalizeAppliesScaleDefaults(t *testing.T) {
	d := Draft{
		Title:     "Mood",
		Questions: []Question{{Text: "Energy?", Type: TypeScale}},
	}

	q := d.normalize().Questions[0]
	if q.ScaleMin != DefaultScaleMin || q.ScaleMax != DefaultScaleMax {
		t.Errorf("bounds = %d..%d, want %d..%d",
			q.ScaleMin, q.ScaleMax, DefaultScaleMin, DefaultScaleMax)
	}
}

func TestNormalizeClearsBoundsOnNonScale(t *testing.T) {
	d := Draft{
		Title:     "Mood",
		Questions: []Question{{Text: "Sleep well?", Type: TypeYesNo, ScaleMin: 1, ScaleMax: 10}},
	}

	q := d.normalize().Questions[0]
	if q.ScaleMin != 0 || q.ScaleMax != 0 {
		t.Errorf("bounds = %d..%d, want 0..0 for yes-no", q.ScaleMin, q.ScaleMax)
	}
}

func TestQuestionBounds(t *testing.T) {
	tests := []struct {
		name     string
		q        Question
		wantMin  int
		wantMax  int
	}{
		{"absent bounds", Question{Type: TypeScale}, 1, 10},
		{"explicit bounds", Question{Type: TypeScale, ScaleMin: 0, ScaleMax: 5}, 1, 5},
		{"full bounds", Question{Type: TypeScale, ScaleMin: 2, ScaleMax: 7}, 2, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			min, max := tt.q.Bounds()
			if min != tt.wantMin || max != tt.wantMax {
				t.Errorf("Bounds() = %d, %d; want %d, %d", min, max, tt.wantMin, tt.wantMax)
			}
		})
	}
}
