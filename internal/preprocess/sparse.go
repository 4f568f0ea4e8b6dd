package preprocess

import (
	"image"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Sparse-image thresholds, tuned against rendered-text fixtures. A page
// with any real text has well over 0.2% dark pixels and a visible
// luminance spread; a blank or near-blank page has neither, and tesseract's
// OSD pass fails on it outright.
const (
	sparseInkRatio  = 0.002
	sparseLumSpread = 0.02
	sampleGrid      = 64
)

// IsSparse reports whether the image is too blank for orientation analysis.
// It samples pixel luminance on a grid and flags images with almost no ink
// or no luminance variation at all.
func IsSparse(img image.Image) bool {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width == 0 || height == 0 {
		return true
	}

	stepX := width / sampleGrid
	if stepX < 1 {
		stepX = 1
	}
	stepY := height / sampleGrid
	if stepY < 1 {
		stepY = 1
	}

	var (
		samples []float64
		sum     float64
		dark    int
	)
	for y := bounds.Min.Y; y < bounds.Max.Y; y += stepY {
		for x := bounds.Min.X; x < bounds.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				// Fully transparent pixel; nothing to measure.
				continue
			}
			l, _, _ := c.Luv()
			samples = append(samples, l)
			sum += l
			if l < 0.5 {
				dark++
			}
		}
	}
	if len(samples) == 0 {
		return true
	}

	inkRatio := float64(dark) / float64(len(samples))
	if inkRatio < sparseInkRatio {
		return true
	}

	mean := sum / float64(len(samples))
	var variance float64
	for _, l := range samples {
		variance += (l - mean) * (l - mean)
	}
	spread := math.Sqrt(variance / float64(len(samples)))
	return spread < sparseLumSpread
}
