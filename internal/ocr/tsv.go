package ocr

import (
	"fmt"
	"strconv"
	"strings"
)

// Column indices of tesseract's tsv output:
// level page_num block_num par_num line_num word_num left top width height conf text
const (
	tsvColLeft   = 6
	tsvColTop    = 7
	tsvColWidth  = 8
	tsvColHeight = 9
	tsvColConf   = 10
	tsvColText   = 11
	tsvColumns   = 12
)

// ParseTSV converts tesseract tsv output into a token table. The header row
// is skipped. Structural rows (page/block/paragraph/line) carry conf -1 and
// no text column; they become empty-text tokens and are filtered out
// downstream like any other blank token. Numeric fields are coerced from
// whatever formatting the engine emits.
func ParseTSV(out string) (*TokenTable, error) {
	table := &TokenTable{}

	for i, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if fields[0] == "level" {
			// Header row.
			continue
		}
		if len(fields) < tsvColText {
			return nil, fmt.Errorf("parse tsv row %d: want at least %d columns, got %d", i, tsvColText, len(fields))
		}

		left, err := parseTSVInt(fields[tsvColLeft], i, "left")
		if err != nil {
			return nil, err
		}
		top, err := parseTSVInt(fields[tsvColTop], i, "top")
		if err != nil {
			return nil, err
		}
		width, err := parseTSVInt(fields[tsvColWidth], i, "width")
		if err != nil {
			return nil, err
		}
		height, err := parseTSVInt(fields[tsvColHeight], i, "height")
		if err != nil {
			return nil, err
		}
		conf, err := strconv.ParseFloat(fields[tsvColConf], 64)
		if err != nil {
			return nil, fmt.Errorf("parse tsv row %d: conf %q: %w", i, fields[tsvColConf], err)
		}

		text := ""
		if len(fields) >= tsvColumns {
			text = fields[tsvColText]
		}
		table.Add(text, left, top, width, height, conf)
	}
	return table, nil
}

func parseTSVInt(s string, row int, col string) (int, error) {
	// Coerce through float so values like "10.0" still land as ints.
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse tsv row %d: %s %q: %w", row, col, s, err)
	}
	return int(f), nil
}
