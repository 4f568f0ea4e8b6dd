package batch

import (
	"os"

	"github.com/ironsheep/ocr-scan/internal/errs"
	"github.com/ironsheep/ocr-scan/internal/logging"
	"github.com/ironsheep/ocr-scan/internal/ocr"
	"github.com/ironsheep/ocr-scan/internal/preprocess"
	"github.com/ironsheep/ocr-scan/internal/report"
	"github.com/ironsheep/ocr-scan/internal/words"
)

// Options control the optional per-image steps. Both default to off, which
// preserves the strict contract: every enumerated image goes straight to
// the engine, and any engine failure aborts the whole batch.
type Options struct {
	// Preprocess runs image cleanup and feeds the engine a temporary PNG.
	Preprocess bool

	// SkipSparse skips images too blank for orientation analysis, with a
	// warning, instead of letting the engine's OSD failure abort the run.
	SkipSparse bool
}

// Runner processes a directory of images one at a time, in sorted order,
// and accumulates the report. There is no shared state across images.
type Runner struct {
	engine ocr.Engine
	log    *logging.Logger
	opts   Options
}

// NewRunner creates a runner for the given engine.
func NewRunner(engine ocr.Engine, log *logging.Logger, opts Options) *Runner {
	return &Runner{engine: engine, log: log, opts: opts}
}

// Run enumerates dir and processes every image sequentially. The first
// engine failure aborts the run with ENGINE_INVOCATION_FAILURE; nothing is
// written on a failed run.
func (r *Runner) Run(dir string) (*report.Report, error) {
	paths, err := ListImages(dir)
	if err != nil {
		return nil, err
	}

	rep := report.New()
	for _, path := range paths {
		entry, skipped, err := r.processImage(path)
		if err != nil {
			return nil, err
		}
		if skipped {
			continue
		}
		rep.Add(entry)
	}
	return rep, nil
}

func (r *Runner) processImage(path string) (report.ImageEntry, bool, error) {
	target := path

	if r.opts.SkipSparse || r.opts.Preprocess {
		img, err := preprocess.Load(path)
		if err != nil {
			return report.ImageEntry{}, false, errs.EngineInvocation(path, err)
		}

		if r.opts.SkipSparse && preprocess.IsSparse(img) {
			r.log.Warn("skipping sparse image", "file", path)
			return report.ImageEntry{}, true, nil
		}

		if r.opts.Preprocess {
			tmpPath, err := preprocess.WriteTemp(preprocess.Clean(img), "ocr-scan")
			if err != nil {
				return report.ImageEntry{}, false, errs.EngineInvocation(path, err)
			}
			defer os.Remove(tmpPath)
			target = tmpPath
		}
	}

	rotation, err := r.engine.DetectOrientation(target)
	if err != nil {
		return report.ImageEntry{}, false, errs.EngineInvocation(path, err)
	}

	recognized, err := words.Extract(r.engine, target, rotation)
	if err != nil {
		return report.ImageEntry{}, false, errs.EngineInvocation(path, err)
	}

	r.log.Debug("processed image", "file", path, "rotation", rotation, "words", len(recognized))

	// The report names the original file even when the engine saw a
	// preprocessed temporary.
	return report.ImageEntry{File: path, Rotation: rotation, Words: recognized}, false, nil
}
