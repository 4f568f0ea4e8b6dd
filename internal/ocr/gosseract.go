package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/ocr-scan/internal/errs"
)

// LibraryEngine runs word-level recognition through the gosseract bindings.
// The bindings expose no OSD API, so orientation detection delegates to the
// tesseract executable via an embedded CommandEngine.
type LibraryEngine struct {
	language string
	osd      *CommandEngine
}

// NewLibraryEngine creates a bindings-backed engine. The command is still
// needed for orientation detection.
func NewLibraryEngine(command, language string) *LibraryEngine {
	return &LibraryEngine{
		language: language,
		osd:      NewCommandEngine(command, language),
	}
}

func (e *LibraryEngine) Name() string { return "library" }

// Available probes the bindings for a linked tesseract and the executable
// used for orientation detection.
func (e *LibraryEngine) Available() error {
	client := gosseract.NewClient()
	defer client.Close()

	if client.Version() == "" {
		return errs.EngineUnavailable("gosseract", fmt.Errorf("no tesseract version reported by bindings"))
	}
	return e.osd.Available()
}

// DetectOrientation reports the page rotation via the executable's OSD mode.
func (e *LibraryEngine) DetectOrientation(path string) (int, error) {
	return e.osd.DetectOrientation(path)
}

// ExtractTokens collects word-level boxes from the bindings. Confidence is
// kept on the engine's native 0-100 scale, matching the tsv conf column of
// the command backend.
func (e *LibraryEngine) ExtractTokens(path string) (*TokenTable, error) {
	client := gosseract.NewClient()
	defer client.Close()

	if e.language != "" {
		if err := client.SetLanguage(e.language); err != nil {
			return nil, fmt.Errorf("set language: %w", err)
		}
	}
	if err := client.SetImage(path); err != nil {
		return nil, fmt.Errorf("set image: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("get bounding boxes: %w", err)
	}

	table := &TokenTable{}
	for _, box := range boxes {
		table.Add(box.Word, box.Box.Min.X, box.Box.Min.Y, box.Box.Dx(), box.Box.Dy(), box.Confidence)
	}
	return table, nil
}
