// Package debug provides the opt-in diagnostic log.
package debug

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Enabled returns true if debug mode is active (AUTOCOMPLETE_DEBUG=1).
func Enabled() bool {
	return os.Getenv("AUTOCOMPLETE_DEBUG") == "1"
}

// NewLogger returns a logger writing to dir/autocomplete.log when debug mode
// is enabled, and a discarding logger otherwise. The terminal belongs to the
// TUI, so nothing is ever written to stderr.
func NewLogger(dir string) *log.Logger {
	if !Enabled() {
		return log.New(io.Discard, "", 0)
	}
	return log.New(newRotatingFile(dir), "", log.LstdFlags)
}

func newRotatingFile(dir string) io.Writer {
	return &lumberjack.Logger{
		Filename:   filepath.Join(dir, "autocomplete.log"),
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
}
