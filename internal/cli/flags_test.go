package cli

import (
	"reflect"
	"testing"
)

func TestNewFlags(t *testing.T) {
	flags := NewFlags()

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"DeckFile", flags.DeckFile, "flashcards.json"},
		{"LogLevel", flags.LogLevel, "info"},
		{"DeckName", flags.DeckName, "Flashcards"},
		{"CfgFile", flags.CfgFile, ""},
		{"ImportFile", flags.ImportFile, ""},
		{"ExportPath", flags.ExportPath, ""},
		{"AnkiCSV", flags.AnkiCSV, false},
		{"Archive", flags.Archive, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.expected) {
				t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.expected)
			}
		})
	}
}

func TestFlagsHeadless(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Flags)
		want   bool
	}{
		{"defaults open the GUI", func(*Flags) {}, false},
		{"import", func(f *Flags) { f.ImportFile = "cards.txt" }, true},
		{"export", func(f *Flags) { f.ExportPath = "deck.apkg" }, true},
		{"archive", func(f *Flags) { f.Archive = true }, true},
		{"csv alone is not an action", func(f *Flags) { f.AnkiCSV = true }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flags := NewFlags()
			tt.modify(flags)
			if got := flags.Headless(); got != tt.want {
				t.Errorf("Headless() = %v, want %v", got, tt.want)
			}
		})
	}
}
