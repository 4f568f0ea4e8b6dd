// Package preprocess provides optional image cleanup and a cheap
// sparse-image check run before handing files to the OCR engine.
package preprocess

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// Load decodes the image at path. The supported formats match the
// enumerator's extension set (PNG, JPEG, TIFF, BMP).
func Load(path string) (image.Image, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// Clean applies light cleanup ahead of recognition: grayscale conversion,
// a contrast boost, and a sharpening pass. The output keeps the input
// dimensions.
func Clean(img image.Image) image.Image {
	out := imaging.Grayscale(img)
	out = imaging.AdjustContrast(out, 20)
	return effect.Sharpen(out)
}

// WriteTemp encodes img as a temporary PNG and returns its path, for
// engines that need a file on disk. The caller removes the file after use.
func WriteTemp(img image.Image, prefix string) (string, error) {
	tmpFile, err := os.CreateTemp("", prefix+"-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	if err := png.Encode(tmpFile, img); err != nil {
		tmpFile.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to encode temp image: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		os.Remove(tmpPath)
		return "", err
	}
	return tmpPath, nil
}
