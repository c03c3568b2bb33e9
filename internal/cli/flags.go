package cli

import (
	"codeberg.org/snonux/flipdeck/internal/anki"
	"codeberg.org/snonux/flipdeck/internal/deck"
)

// Flags holds all command-line flag values
type Flags struct {
	// General flags
	CfgFile  string
	DeckFile string
	LogLevel string

	// Maintenance flags, each runs without opening the GUI
	ImportFile string
	ExportPath string
	AnkiCSV    bool
	DeckName   string
	Archive    bool
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		DeckFile: deck.DefaultFileName,
		LogLevel: "info",
		DeckName: anki.DefaultDeckName,
	}
}

// Headless reports whether a maintenance flag was given
func (f *Flags) Headless() bool {
	return f.ImportFile != "" || f.ExportPath != "" || f.Archive
}
