// Package ocr wraps the external OCR engine behind a narrow interface.
//
// The engine exposes exactly two recognition operations — page orientation
// detection and word-level token extraction — plus an availability probe
// run once at startup. Two backends are provided:
//
//   - CommandEngine shells out to the tesseract executable and parses its
//     OSD and TSV output. This is the default and the only backend that
//     needs no cgo.
//   - LibraryEngine uses the gosseract bindings for token extraction. The
//     bindings expose no OSD API, so orientation detection still goes
//     through the executable.
//
// Nothing outside this package depends on tesseract specifics; any backend
// implementing Engine is substitutable.
package ocr
