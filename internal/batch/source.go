// Package batch enumerates image files and runs the sequential OCR loop.
package batch

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ironsheep/ocr-scan/internal/errs"
)

// supportedExtensions are the image types handed to the engine, matched
// case-insensitively against the file extension.
var supportedExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
	".bmp":  true,
}

// ListImages returns the supported image files directly inside dir, sorted
// ascending by full path. Subdirectories and files with other extensions
// are silently excluded; there is no recursion. A missing dir (or a path
// that is not a directory) fails with DIRECTORY_NOT_FOUND.
func ListImages(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, errs.DirectoryNotFound(dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read image directory %s: %w", dir, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if supportedExtensions[ext] {
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
