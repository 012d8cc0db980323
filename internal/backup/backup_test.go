package backup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assay/internal/assessment"
	"assay/internal/result"
)

func sampleData() ([]assessment.Assessment, []result.Result) {
	assessments := []assessment.Assessment{{
		ID:          "a1",
		Title:       "Mood",
		Description: "Evening check-in",
		Questions: []assessment.Question{
			{ID: "q1", Text: "Energy?", Type: assessment.TypeScale, ScaleMin: 1, ScaleMax: 10},
			{ID: "q2", Text: "Slept well?", Type: assessment.TypeYesNo},
		},
		CreatedAt: 1000,
		UpdatedAt: 2000,
	}}
	results := []result.Result{{
		ID:           "r1",
		AssessmentID: "a1",
		Timestamp:    3000,
		Responses: []result.Response{
			{QuestionID: "q1", Value: result.Number(0)},
			{QuestionID: "q2", Value: result.Text("yes")},
		},
	}}
	return assessments, results
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	assessments, results := sampleData()

	raw, err := Encode(5000, assessments, results)
	require.NoError(t, err)

	f, err := Decode(raw)
	require.NoError(t, err)

	assert.Equal(t, Version, f.Version)
	assert.Equal(t, int64(5000), f.ExportedAt)
	require.Len(t, f.Assessments, 1)
	assert.Equal(t, assessments[0], f.Assessments[0])
	require.Len(t, f.Results, 1)
	assert.Equal(t, results[0], f.Results[0])
}

func TestEncodeEmpty(t *testing.T) {
	raw, err := Encode(1, nil, nil)
	require.NoError(t, err)

	f, err := Decode(raw)
	require.NoError(t, err)
	assert.Empty(t, f.Assessments)
	assert.Empty(t, f.Results)
}

func TestDecodeRejectsInvalidJSON(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	assert.Error(t, err)
}

func TestDecodeRejectsSchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "missing version",
			data: `{"exportedAt":1,"assessments":[],"testResults":[]}`,
		},
		{
			name: "bad question type",
			data: `{"version":1,"exportedAt":1,"assessments":[{"id":"a1","title":"T",
				"questions":[{"id":"q1","text":"Q","type":"multiple-choice"}],
				"createdAt":1,"updatedAt":1}],"testResults":[]}`,
		},
		{
			name: "boolean response value",
			data: `{"version":1,"exportedAt":1,"assessments":[],
				"testResults":[{"id":"r1","assessmentId":"a1","timestamp":1,
				"responses":[{"questionId":"q1","value":true}]}]}`,
		},
		{
			name: "assessment without questions",
			data: `{"version":1,"exportedAt":1,"assessments":[{"id":"a1","title":"T",
				"questions":[],"createdAt":1,"updatedAt":1}],"testResults":[]}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	_, err := Decode([]byte(`{"version":99,"exportedAt":1,"assessments":[],"testResults":[]}`))
	assert.Error(t, err)
}
