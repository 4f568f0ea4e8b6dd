package errs

import (
	"errors"
	"fmt"
)

// Code identifies a failure category with a stable machine-readable name.
type Code string

const (
	// CodeEngineUnavailable means the OCR engine cannot be located or invoked.
	// Fatal at startup, before any image is processed.
	CodeEngineUnavailable Code = "ENGINE_UNAVAILABLE"

	// CodeDirectoryNotFound means the configured image directory does not
	// exist or is not a directory. Fatal at startup.
	CodeDirectoryNotFound Code = "DIRECTORY_NOT_FOUND"

	// CodeEngineInvocation means the engine failed on a specific image.
	// Aborts the whole batch run.
	CodeEngineInvocation Code = "ENGINE_INVOCATION_FAILURE"
)

// Error is a failure with a stable code, a human-readable message, and an
// optional path and wrapped cause.
type Error struct {
	Code    Code
	Message string
	Path    string
	Cause   error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, msg, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, msg)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// HasCode reports whether err carries the given code anywhere in its chain.
func HasCode(err error, code Code) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// EngineUnavailable builds the fatal startup error for a missing engine.
func EngineUnavailable(command string, cause error) *Error {
	return &Error{
		Code: CodeEngineUnavailable,
		Message: fmt.Sprintf(
			"OCR engine %q not found; install tesseract or provide the path via --tesseract-cmd or the TESSERACT_CMD environment variable",
			command),
		Cause: cause,
	}
}

// DirectoryNotFound builds the fatal startup error for a missing image directory.
func DirectoryNotFound(dir string) *Error {
	return &Error{
		Code:    CodeDirectoryNotFound,
		Message: "image directory not found",
		Path:    dir,
	}
}

// EngineInvocation wraps an engine failure on a specific image.
func EngineInvocation(path string, cause error) *Error {
	return &Error{
		Code:    CodeEngineInvocation,
		Message: "OCR engine failed",
		Path:    path,
		Cause:   cause,
	}
}
