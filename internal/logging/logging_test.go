package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want zerolog.Level
	}{
		{"empty", "", zerolog.InfoLevel},
		{"debug", "debug", zerolog.DebugLevel},
		{"upper case", "WARN", zerolog.WarnLevel},
		{"padded", "  error ", zerolog.ErrorLevel},
		{"unknown", "chatty", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNewFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, zerolog.WarnLevel)

	log.Info().Msg("hidden")
	log.Error().Str("file", "flashcards.json").Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info message should have been filtered: %s", out)
	}
	if !strings.Contains(out, `"file":"flashcards.json"`) {
		t.Errorf("expected structured field in output: %s", out)
	}
}

func TestNewConsoleTeesToExtraWriters(t *testing.T) {
	var panel bytes.Buffer
	log := NewConsole(zerolog.InfoLevel, &panel)

	log.Info().Msg("deck loaded")

	if !strings.Contains(panel.String(), "deck loaded") {
		t.Errorf("extra writer did not receive message: %q", panel.String())
	}
}
