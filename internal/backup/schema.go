package backup

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// fileSchema describes the backup file format. Response values are a
// number or a string; scale bounds appear only on scale questions.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version":    map[string]any{"type": "integer", "minimum": 1},
		"exportedAt": map[string]any{"type": "integer"},
		"assessments": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":          map[string]any{"type": "string", "minLength": 1},
					"title":       map[string]any{"type": "string", "minLength": 1},
					"description": map[string]any{"type": "string"},
					"questions": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":       map[string]any{"type": "string", "minLength": 1},
								"text":     map[string]any{"type": "string", "minLength": 1},
								"type":     map[string]any{"enum": []any{"scale", "yes-no", "text"}},
								"scaleMin": map[string]any{"type": "integer"},
								"scaleMax": map[string]any{"type": "integer"},
							},
							"required":             []any{"id", "text", "type"},
							"additionalProperties": false,
						},
					},
					"createdAt": map[string]any{"type": "integer"},
					"updatedAt": map[string]any{"type": "integer"},
				},
				"required":             []any{"id", "title", "questions", "createdAt", "updatedAt"},
				"additionalProperties": false,
			},
		},
		"testResults": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":           map[string]any{"type": "string", "minLength": 1},
					"assessmentId": map[string]any{"type": "string", "minLength": 1},
					"timestamp":    map[string]any{"type": "integer"},
					"responses": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"questionId": map[string]any{"type": "string", "minLength": 1},
								"value":      map[string]any{"type": []any{"number", "string"}},
							},
							"required":             []any{"questionId", "value"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "assessmentId", "timestamp", "responses"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"version", "exportedAt", "assessments", "testResults"},
	"additionalProperties": false,
}

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// validate checks raw bytes against fileSchema.
func validate(data []byte) error {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := schema()
	if err != nil {
		return err
	}
	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("backup does not match schema: %w", err)
	}
	return nil
}

// schema compiles fileSchema once and caches the result.
func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, not Go maps with
		// typed values. Round-trip through encoding/json to normalize.
		raw, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(raw, &parsed); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://assay-backup.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
