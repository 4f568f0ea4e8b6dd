// Package words turns raw engine token tables into normalized word records.
//
// This is the one real transformation in the program: blank tokens are
// dropped, box geometry is derived, and rotation metadata is attached to
// every record.
package words

import (
	"fmt"
	"strings"

	"github.com/ironsheep/ocr-scan/internal/ocr"
)

// Position is the derived box geometry for one word. Right and bottom come
// from left+width and top+height; the center values are the box midpoints.
type Position struct {
	Left    int     `json:"left"`
	Top     int     `json:"top"`
	Right   int     `json:"right"`
	Bottom  int     `json:"bottom"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
}

// Word is one recognized token with geometry and rotation metadata. FontSize
// is the box height in pixels, a proxy rather than a true font metric.
// Confidence is the engine's score passed through unchanged; the engine may
// report negative values for non-text regions.
type Word struct {
	Text       string   `json:"text"`
	Rotation   int      `json:"rotation"`
	Position   Position `json:"position"`
	FontSize   int      `json:"font_size"`
	Confidence float64  `json:"confidence"`
}

// Build converts a token table into word records, preserving the engine's
// token order. Tokens whose trimmed text is empty produce no record, so the
// output never contains blank words. The result is always non-nil.
func Build(table *ocr.TokenTable, rotation int) []Word {
	records := make([]Word, 0, table.Len())
	for i := 0; i < table.Len(); i++ {
		text := strings.TrimSpace(table.Text[i])
		if text == "" {
			continue
		}

		left := table.Left[i]
		top := table.Top[i]
		width := table.Width[i]
		height := table.Height[i]

		records = append(records, Word{
			Text:     text,
			Rotation: rotation,
			Position: Position{
				Left:    left,
				Top:     top,
				Right:   left + width,
				Bottom:  top + height,
				CenterX: float64(left) + float64(width)/2,
				CenterY: float64(top) + float64(height)/2,
			},
			FontSize:   height,
			Confidence: table.Conf[i],
		})
	}
	return records
}

// Extract invokes the engine's token extraction for the image at path and
// builds the word records with the previously detected rotation. Engine
// failures propagate unchanged.
func Extract(engine ocr.Engine, path string, rotation int) ([]Word, error) {
	table, err := engine.ExtractTokens(path)
	if err != nil {
		return nil, fmt.Errorf("extract tokens: %w", err)
	}
	return Build(table, rotation), nil
}
