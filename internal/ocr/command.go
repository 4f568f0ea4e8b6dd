package ocr

import (
	"bytes"
	"fmt"
	"os/exec"
	"strings"

	"github.com/ironsheep/ocr-scan/internal/errs"
)

// CommandEngine runs OCR through the tesseract executable. Orientation uses
// the OSD page segmentation mode (--psm 0); token extraction uses the tsv
// output config.
type CommandEngine struct {
	command  string
	language string
}

// NewCommandEngine creates an engine for the given executable (a bare name
// resolved on PATH or an absolute path) and language code. An empty
// language leaves the engine's default in place.
func NewCommandEngine(command, language string) *CommandEngine {
	return &CommandEngine{command: command, language: language}
}

func (e *CommandEngine) Name() string { return "command" }

// Available checks that the executable resolves and runs.
func (e *CommandEngine) Available() error {
	path, err := exec.LookPath(e.command)
	if err != nil {
		return errs.EngineUnavailable(e.command, err)
	}
	if err := exec.Command(path, "--version").Run(); err != nil {
		return errs.EngineUnavailable(e.command, err)
	}
	return nil
}

// DetectOrientation runs OSD on the image and parses the rotation from the
// descriptive output block. No "Rotate" line means no rotation detected.
func (e *CommandEngine) DetectOrientation(path string) (int, error) {
	out, err := e.run(path, "stdout", "--psm", "0")
	if err != nil {
		return 0, fmt.Errorf("detect orientation: %w", err)
	}
	return ParseOSD(string(out)), nil
}

// ExtractTokens runs word-level recognition and parses the TSV table.
func (e *CommandEngine) ExtractTokens(path string) (*TokenTable, error) {
	args := []string{path, "stdout"}
	if e.language != "" {
		args = append(args, "-l", e.language)
	}
	args = append(args, "tsv")

	out, err := e.run(args...)
	if err != nil {
		return nil, fmt.Errorf("extract tokens: %w", err)
	}
	return ParseTSV(string(out))
}

// run executes the engine with args, returning stdout. Stderr is folded
// into the error message on failure; on success tesseract's progress
// chatter there is discarded.
func (e *CommandEngine) run(args ...string) ([]byte, error) {
	cmd := exec.Command(e.command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail != "" {
			return nil, fmt.Errorf("%s %s: %w: %s", e.command, strings.Join(args, " "), err, detail)
		}
		return nil, fmt.Errorf("%s %s: %w", e.command, strings.Join(args, " "), err)
	}
	return stdout.Bytes(), nil
}
