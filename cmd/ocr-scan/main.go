package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/ironsheep/ocr-scan/internal/batch"
	"github.com/ironsheep/ocr-scan/internal/config"
	"github.com/ironsheep/ocr-scan/internal/logging"
	"github.com/ironsheep/ocr-scan/internal/ocr"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	cfg, err := config.LoadWithOutput(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "ocr-scan: %v\n", err)
		os.Exit(2)
	}

	if cfg.ShowVersion {
		fmt.Printf("ocr-scan %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	log := logging.New("ocr-scan")
	log.Debug("starting", "version", Version, "engine", cfg.Engine, "command", cfg.TesseractCmd)

	var engine ocr.Engine
	switch cfg.Engine {
	case config.EngineLibrary:
		engine = ocr.NewLibraryEngine(cfg.TesseractCmd, cfg.Language)
	default:
		engine = ocr.NewCommandEngine(cfg.TesseractCmd, cfg.Language)
	}

	if err := engine.Available(); err != nil {
		log.Error("OCR engine unavailable", "error", err)
		os.Exit(1)
	}

	runner := batch.NewRunner(engine, log, batch.Options{
		Preprocess: cfg.Preprocess,
		SkipSparse: cfg.SkipSparse,
	})

	rep, err := runner.Run(cfg.ImageDir)
	if err != nil {
		log.Error("scan failed", "error", err)
		os.Exit(1)
	}

	if err := rep.WriteFile(cfg.Output); err != nil {
		log.Error("failed to write report", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Wrote OCR results to %s\n", cfg.Output)
}
