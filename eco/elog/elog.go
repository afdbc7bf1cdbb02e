// Package elog is the structured-logging wrapper shared by cmd/eco and
// the bundler's module-resolution tracing (SPEC_FULL.md [AMBIENT]
// Logging). The teacher is a dependency-free library with no logging of
// its own, so this is grounded instead on sambeau-basil's use of
// zerolog for server/CLI diagnostics.
package elog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is a thin handle around a zerolog.Logger, kept as its own type
// (rather than exporting zerolog.Logger directly) so callers depend on
// this package's surface, not zerolog's, if the backing library ever
// changes.
type Logger struct {
	zerolog.Logger
}

// New builds a human-readable console logger writing to w (os.Stderr in
// normal use; a bytes.Buffer in tests).
func New(w io.Writer, verbose bool) *Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	l := zerolog.New(console).Level(level).With().Timestamp().Logger()
	return &Logger{Logger: l}
}

// Nop returns a Logger that discards everything, used as the bundler's
// default when the caller doesn't wire one in.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// Default is a convenience constructor writing to stderr at info level.
func Default() *Logger {
	return New(os.Stderr, false)
}
