package ocr

import (
	"strconv"
	"strings"
)

// ParseOSD extracts the rotation in degrees from an OSD output block such as
//
//	Page number: 0
//	Orientation in degrees: 90
//	Rotate: 270
//	Orientation confidence: 12.34
//	...
//
// Only the first line containing "Rotate" is considered: it is split on the
// first colon and the remainder parsed as an integer. A block with no such
// line, or a value that does not parse, reports 0.
func ParseOSD(block string) int {
	for _, line := range strings.Split(block, "\n") {
		if !strings.Contains(line, "Rotate") {
			continue
		}
		_, value, found := strings.Cut(line, ":")
		if !found {
			return 0
		}
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}
