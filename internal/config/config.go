// Package config resolves the scanner's configuration from command-line
// flags and environment variables. A .env file in the working directory is
// honored when present. Configuration is resolved once at startup and
// passed around explicitly; nothing in here is mutated afterwards.
package config

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
)

const (
	// DefaultImageDir is the directory scanned for images.
	DefaultImageDir = "img"

	// DefaultOutput is the path of the JSON report.
	DefaultOutput = "ocr_output.json"

	// DefaultCommand is the engine executable resolved on PATH when neither
	// the flag nor the environment variable names one.
	DefaultCommand = "tesseract"

	// EnvCommand overrides the engine executable path.
	EnvCommand = "TESSERACT_CMD"
)

// Engine backend names accepted by the --engine flag.
const (
	EngineCommand = "command"
	EngineLibrary = "library"
)

// Config holds the resolved scanner configuration.
type Config struct {
	// ImageDir is the directory containing the images to scan.
	ImageDir string

	// Output is the JSON report path, overwritten unconditionally.
	Output string

	// TesseractCmd is the resolved engine executable: --tesseract-cmd flag,
	// then TESSERACT_CMD, then "tesseract".
	TesseractCmd string

	// Engine selects the OCR backend: "command" (external executable) or
	// "library" (native bindings).
	Engine string

	// Language is the tesseract language code passed to the engine.
	Language string

	// Preprocess enables image cleanup before recognition.
	Preprocess bool

	// SkipSparse skips images too blank for orientation analysis instead of
	// aborting the batch.
	SkipSparse bool

	// ShowVersion requests version output and exit.
	ShowVersion bool
}

// Load parses args (not including the program name) into a Config.
// Before reading the environment it loads a .env file if one exists.
func Load(args []string) (*Config, error) {
	return load(args, io.Discard)
}

// LoadWithOutput is Load with flag usage output directed to w.
func LoadWithOutput(args []string, w io.Writer) (*Config, error) {
	return load(args, w)
}

func load(args []string, usage io.Writer) (*Config, error) {
	// Missing .env is the normal case; any other load error is also
	// non-fatal since all settings have flag or default values.
	_ = godotenv.Load()

	fs := flag.NewFlagSet("ocr-scan", flag.ContinueOnError)
	fs.SetOutput(usage)

	cfg := &Config{}
	fs.StringVar(&cfg.ImageDir, "img-dir", DefaultImageDir, "directory containing images")
	fs.StringVar(&cfg.Output, "output", DefaultOutput, "output JSON path")
	tesseractCmd := fs.String("tesseract-cmd", "", "path to the tesseract executable (or set TESSERACT_CMD)")
	fs.StringVar(&cfg.Engine, "engine", EngineCommand, `OCR backend: "command" or "library"`)
	fs.StringVar(&cfg.Language, "lang", "eng", "tesseract language code")
	fs.BoolVar(&cfg.Preprocess, "preprocess", false, "clean up images before recognition")
	fs.BoolVar(&cfg.SkipSparse, "skip-sparse", false, "skip images too blank for orientation analysis instead of failing")
	fs.BoolVar(&cfg.ShowVersion, "version", false, "print version information and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if cfg.Engine != EngineCommand && cfg.Engine != EngineLibrary {
		return nil, fmt.Errorf("unknown engine %q (want %q or %q)", cfg.Engine, EngineCommand, EngineLibrary)
	}
	cfg.TesseractCmd = ResolveCommand(*tesseractCmd)
	return cfg, nil
}

// ResolveCommand picks the engine executable: explicit override first, then
// the TESSERACT_CMD environment variable, then the default command name.
func ResolveCommand(override string) string {
	if override != "" {
		return override
	}
	if env := os.Getenv(EnvCommand); env != "" {
		return env
	}
	return DefaultCommand
}
