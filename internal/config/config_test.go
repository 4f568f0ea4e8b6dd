package config

import (
	"testing"
)

func TestDefaults(t *testing.T) {
	t.Setenv(EnvCommand, "")

	cfg, err := Load(nil)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ImageDir != "img" {
		t.Errorf("ImageDir = %q, want %q", cfg.ImageDir, "img")
	}
	if cfg.Output != "ocr_output.json" {
		t.Errorf("Output = %q, want %q", cfg.Output, "ocr_output.json")
	}
	if cfg.TesseractCmd != DefaultCommand {
		t.Errorf("TesseractCmd = %q, want %q", cfg.TesseractCmd, DefaultCommand)
	}
	if cfg.Engine != EngineCommand {
		t.Errorf("Engine = %q, want %q", cfg.Engine, EngineCommand)
	}
	if cfg.Language != "eng" {
		t.Errorf("Language = %q, want %q", cfg.Language, "eng")
	}
	if cfg.Preprocess || cfg.SkipSparse || cfg.ShowVersion {
		t.Error("boolean options should default to false")
	}
}

func TestFlagOverrides(t *testing.T) {
	cfg, err := Load([]string{
		"--img-dir", "scans",
		"--output", "words.json",
		"--engine", "library",
		"--lang", "deu",
		"--preprocess",
		"--skip-sparse",
	})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.ImageDir != "scans" {
		t.Errorf("ImageDir = %q, want %q", cfg.ImageDir, "scans")
	}
	if cfg.Output != "words.json" {
		t.Errorf("Output = %q, want %q", cfg.Output, "words.json")
	}
	if cfg.Engine != EngineLibrary {
		t.Errorf("Engine = %q, want %q", cfg.Engine, EngineLibrary)
	}
	if cfg.Language != "deu" {
		t.Errorf("Language = %q, want %q", cfg.Language, "deu")
	}
	if !cfg.Preprocess || !cfg.SkipSparse {
		t.Error("boolean flags not applied")
	}
}

func TestUnknownEngineRejected(t *testing.T) {
	if _, err := Load([]string{"--engine", "cloud"}); err == nil {
		t.Fatal("expected error for unknown engine")
	}
}

func TestCommandResolutionPrecedence(t *testing.T) {
	t.Setenv(EnvCommand, "/opt/tesseract/bin/tesseract")

	// Explicit override wins over the environment.
	if got := ResolveCommand("/usr/local/bin/tess"); got != "/usr/local/bin/tess" {
		t.Errorf("override: got %q", got)
	}

	// Environment wins over the default.
	if got := ResolveCommand(""); got != "/opt/tesseract/bin/tesseract" {
		t.Errorf("env: got %q", got)
	}

	t.Setenv(EnvCommand, "")
	if got := ResolveCommand(""); got != DefaultCommand {
		t.Errorf("default: got %q", got)
	}
}

func TestTesseractCmdFlagThreadedThroughLoad(t *testing.T) {
	t.Setenv(EnvCommand, "/from/env")

	cfg, err := Load([]string{"--tesseract-cmd", "/from/flag"})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.TesseractCmd != "/from/flag" {
		t.Errorf("TesseractCmd = %q, want %q", cfg.TesseractCmd, "/from/flag")
	}
}
