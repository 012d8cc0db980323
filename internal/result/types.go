package result

import (
	"sort"

	"assay/internal/assessment"
)

// Response is one answer to one question. QuestionID is a soft
// reference: if the question is later removed from the assessment, the
// response stays and renders as "no response".
type Response struct {
	QuestionID string `json:"questionId"`
	Value      Value  `json:"value"`
}

// Result is one completed submission of an assessment's questions.
// Timestamp is milliseconds since the Unix epoch, set at submission; it
// is the sole ordering key for history and charts. Results are
// immutable after creation.
type Result struct {
	ID           string     `json:"id"`
	AssessmentID string     `json:"assessmentId"`
	Timestamp    int64      `json:"timestamp"`
	Responses    []Response `json:"responses"`
}

// ResponseTo returns the response for the given question id, if any.
func (r Result) ResponseTo(questionID string) (Response, bool) {
	for _, resp := range r.Responses {
		if resp.QuestionID == questionID {
			return resp, true
		}
	}
	return Response{}, false
}

// IsComplete reports whether every question has a present, non-empty
// answer in the in-progress answer map. This is the single gate before
// submission; it checks presence only, not ranges or types.
func IsComplete(questions []assessment.Question, answers map[string]Value) bool {
	for _, q := range questions {
		v, ok := answers[q.ID]
		if !ok || v.IsEmpty() {
			return false
		}
	}
	return true
}

// SortedNewestFirst returns a copy of results ordered by descending
// timestamp, ties keeping their original relative order.
func SortedNewestFirst(results []Result) []Result {
	out := make([]Result, len(results))
	copy(out, results)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})
	return out
}
