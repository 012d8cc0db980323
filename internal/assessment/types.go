package assessment

// QuestionType identifies how a question is asked and answered.
// The set is closed: every switch over it handles all three values.
type QuestionType string

const (
	TypeScale QuestionType = "scale"
	TypeYesNo QuestionType = "yes-no"
	TypeText  QuestionType = "text"
)

// AllTypes returns the question types in authoring-menu order.
func AllTypes() []QuestionType {
	return []QuestionType{TypeScale, TypeYesNo, TypeText}
}

// DisplayName returns a human-readable label for the question type.
func (t QuestionType) DisplayName() string {
	switch t {
	case TypeScale:
		return "Scale"
	case TypeYesNo:
		return "Yes/No"
	case TypeText:
		return "Text"
	default:
		return string(t)
	}
}

// Valid reports whether t is one of the known question types.
func (t QuestionType) Valid() bool {
	switch t {
	case TypeScale, TypeYesNo, TypeText:
		return true
	}
	return false
}

const (
	// DefaultScaleMin and DefaultScaleMax apply when a scale question
	// is saved without explicit bounds.
	DefaultScaleMin = 1
	DefaultScaleMax = 10
)

// Question is one prompt within an assessment. ScaleMin and ScaleMax are
// meaningful only when Type is TypeScale.
type Question struct {
	ID       string       `json:"id"`
	Text     string       `json:"text"`
	Type     QuestionType `json:"type"`
	ScaleMin int          `json:"scaleMin,omitempty"`
	ScaleMax int          `json:"scaleMax,omitempty"`
}

// Bounds returns the inclusive scale range, substituting the defaults
// for absent (zero) values. Callers use it wherever a stored question
// may predate bounds being set.
func (q Question) Bounds() (min, max int) {
	min, max = q.ScaleMin, q.ScaleMax
	if min == 0 {
		min = DefaultScaleMin
	}
	if max == 0 {
		max = DefaultScaleMax
	}
	return min, max
}

// Assessment is a named, ordered set of questions tracked over time.
// Question order is authoring order and is preserved verbatim.
// Timestamps are milliseconds since the Unix epoch.
type Assessment struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Questions   []Question `json:"questions"`
	CreatedAt   int64      `json:"createdAt"`
	UpdatedAt   int64      `json:"updatedAt"`
}

// QuestionByID returns the question with the given id, if present.
func (a Assessment) QuestionByID(id string) (Question, bool) {
	for _, q := range a.Questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// ScaleQuestions returns the questions that can be charted, in order.
func (a Assessment) ScaleQuestions() []Question {
	var qs []Question
	for _, q := range a.Questions {
		if q.Type == TypeScale {
			qs = append(qs, q)
		}
	}
	return qs
}
