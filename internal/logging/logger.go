// Package logging provides a small key/value logger for the scanner.
//
// All log output goes to stderr; stdout is reserved for the final
// confirmation line naming the report path. Set OCR_SCAN_LOG_LEVEL=debug
// to enable per-image progress output.
package logging

import (
	"fmt"
	"io"
	"log"
	"os"
)

// EnvLogLevel selects the log level ("debug" enables Debug output).
const EnvLogLevel = "OCR_SCAN_LOG_LEVEL"

// Logger writes leveled key/value messages.
type Logger struct {
	logger *log.Logger
	debug  bool
}

// New creates a logger with the given prefix, writing to stderr.
func New(prefix string) *Logger {
	return NewWithWriter(prefix, os.Stderr)
}

// NewWithWriter creates a logger writing to w. Used by tests.
func NewWithWriter(prefix string, w io.Writer) *Logger {
	return &Logger{
		logger: log.New(w, fmt.Sprintf("[%s] ", prefix), log.LstdFlags),
		debug:  os.Getenv(EnvLogLevel) == "debug",
	}
}

// Info logs an informational message with key-value pairs.
func (l *Logger) Info(msg string, keysAndValues ...interface{}) {
	l.logWithKV("INFO", msg, keysAndValues...)
}

// Warn logs a warning message with key-value pairs.
func (l *Logger) Warn(msg string, keysAndValues ...interface{}) {
	l.logWithKV("WARN", msg, keysAndValues...)
}

// Error logs an error message with key-value pairs.
func (l *Logger) Error(msg string, keysAndValues ...interface{}) {
	l.logWithKV("ERROR", msg, keysAndValues...)
}

// Debug logs a debug message with key-value pairs. No-op unless the
// OCR_SCAN_LOG_LEVEL environment variable is set to "debug".
func (l *Logger) Debug(msg string, keysAndValues ...interface{}) {
	if !l.debug {
		return
	}
	l.logWithKV("DEBUG", msg, keysAndValues...)
}

func (l *Logger) logWithKV(level, msg string, keysAndValues ...interface{}) {
	kvStr := ""
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		kvStr += fmt.Sprintf(" %v=%v", keysAndValues[i], keysAndValues[i+1])
	}
	l.logger.Printf("[%s] %s%s", level, msg, kvStr)
}
