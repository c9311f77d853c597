// Package logger wraps zerolog for the wpmcp commands.
package logger

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Logger embeds zerolog.Logger so the full zerolog API is available.
type Logger struct {
	zerolog.Logger
}

// Level picks a zerolog level from the CLI verbosity flags.
// quiet wins over debug when both are set.
func Level(quiet, debug bool) zerolog.Level {
	switch {
	case quiet:
		return zerolog.WarnLevel
	case debug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// New returns a human-readable console logger writing to w.
func New(w io.Writer, level zerolog.Level) *Logger {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	l := zerolog.New(out).Level(level).With().Timestamp().Logger()
	return &Logger{l}
}

// NewJSON returns a logger emitting one JSON object per line.
func NewJSON(w io.Writer, level zerolog.Level) *Logger {
	l := zerolog.New(w).Level(level).With().Timestamp().Logger()
	return &Logger{l}
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}
