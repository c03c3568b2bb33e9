// Package logging configures the zerolog logger shared by the deck store,
// the study session and the GUI log panel.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLevel is used when no level is configured or the name is unknown.
const DefaultLevel = zerolog.InfoLevel

// ParseLevel maps a level name (debug, info, warn, error) to a zerolog level.
func ParseLevel(name string) zerolog.Level {
	name = strings.TrimSpace(strings.ToLower(name))
	if name == "" {
		return DefaultLevel
	}
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		return DefaultLevel
	}
	return level
}

// New creates a timestamped logger writing JSON lines to w.
func New(w io.Writer, level zerolog.Level) zerolog.Logger {
	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// NewConsole creates a human-readable logger on stderr. Additional writers
// (for example the GUI log panel) receive the same console-formatted lines.
func NewConsole(level zerolog.Level, extra ...io.Writer) zerolog.Logger {
	writers := []io.Writer{zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}}
	for _, w := range extra {
		writers = append(writers, zerolog.ConsoleWriter{Out: w, NoColor: true, TimeFormat: time.TimeOnly})
	}
	return New(zerolog.MultiLevelWriter(writers...), level)
}

// Nop returns a logger that discards everything. Handy for tests.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
