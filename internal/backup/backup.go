// Package backup encodes the whole database as one portable JSON
// document and validates such documents before restoring them.
package backup

import (
	"encoding/json"
	"fmt"

	"assay/internal/assessment"
	"assay/internal/result"
)

// Version is the current backup file format version.
const Version = 1

// File is the backup document: both collections plus metadata.
type File struct {
	Version     int                     `json:"version"`
	ExportedAt  int64                   `json:"exportedAt"`
	Assessments []assessment.Assessment `json:"assessments"`
	Results     []result.Result         `json:"testResults"`
}

// Encode serializes a backup file with indentation for legibility.
func Encode(exportedAt int64, assessments []assessment.Assessment, results []result.Result) ([]byte, error) {
	if assessments == nil {
		assessments = []assessment.Assessment{}
	}
	if results == nil {
		results = []result.Result{}
	}
	f := File{
		Version:     Version,
		ExportedAt:  exportedAt,
		Assessments: assessments,
		Results:     results,
	}
	raw, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode backup: %w", err)
	}
	return raw, nil
}

// Decode validates data against the backup schema and parses it.
// Structurally invalid input is rejected before anything is decoded, so
// a failed restore can never leave partial data behind.
func Decode(data []byte) (*File, error) {
	if err := validate(data); err != nil {
		return nil, err
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode backup: %w", err)
	}
	if f.Version != Version {
		return nil, fmt.Errorf("unsupported backup version %d", f.Version)
	}
	return &f, nil
}
