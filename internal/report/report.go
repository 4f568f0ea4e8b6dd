// Package report assembles per-image results into the final JSON document.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ironsheep/ocr-scan/internal/words"
)

// ImageEntry is the result for one processed image file.
type ImageEntry struct {
	File     string       `json:"file"`
	Rotation int          `json:"rotation"`
	Words    []words.Word `json:"words"`
}

// Report is the top-level document: one ordered entry per processed image.
type Report struct {
	Images []ImageEntry `json:"images"`
}

// New returns an empty report that serializes with an empty images array
// rather than null.
func New() *Report {
	return &Report{Images: []ImageEntry{}}
}

// Add appends an image entry, normalizing a nil word list to an empty slice
// so "words" is never null in the output.
func (r *Report) Add(entry ImageEntry) {
	if entry.Words == nil {
		entry.Words = []words.Word{}
	}
	r.Images = append(r.Images, entry)
}

// WriteFile serializes the report with two-space indentation and writes it
// to path, unconditionally overwriting any existing file.
func (r *Report) WriteFile(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
