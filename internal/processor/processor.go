package processor

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/flipdeck/internal/anki"
	"codeberg.org/snonux/flipdeck/internal/archive"
	"codeberg.org/snonux/flipdeck/internal/batch"
	"codeberg.org/snonux/flipdeck/internal/cli"
	"codeberg.org/snonux/flipdeck/internal/deck"
	"codeberg.org/snonux/flipdeck/internal/gui"
	"codeberg.org/snonux/flipdeck/internal/session"
)

// Processor handles the deck actions selected by the flags
type Processor struct {
	flags *cli.Flags
	store *deck.Store
	log   zerolog.Logger
	out   io.Writer
}

// NewProcessor creates a processor working on flags.DeckFile
func NewProcessor(flags *cli.Flags, log zerolog.Logger) *Processor {
	return &Processor{
		flags: flags,
		store: deck.NewStore(flags.DeckFile, log),
		log:   log,
		out:   os.Stdout,
	}
}

// Run performs the maintenance actions, or opens the GUI when none was given.
// Archive runs alone; import runs before export so both can be combined.
func (p *Processor) Run(logViewer *gui.LogViewer) error {
	if p.flags.Archive {
		_, err := p.ArchiveDeck()
		return err
	}

	if p.flags.ImportFile != "" {
		if _, err := p.ImportBatch(); err != nil {
			return err
		}
	}

	if p.flags.ExportPath != "" {
		if _, err := p.ExportDeck(); err != nil {
			return err
		}
	}

	if p.flags.Headless() {
		return nil
	}
	return p.RunGUIMode(logViewer)
}

// ArchiveDeck moves the deck file into the archive directory
func (p *Processor) ArchiveDeck() (string, error) {
	archived, err := archive.ArchiveDeck(p.store.Path())
	if err != nil {
		return "", fmt.Errorf("failed to archive deck: %w", err)
	}

	p.log.Info().Str("from", p.store.Path()).Str("to", archived).Msg("archived deck")
	fmt.Fprintf(p.out, "Archived %s to %s\n", p.store.Path(), archived)
	return archived, nil
}

// ImportBatch appends the cards of the batch file to the deck and saves it once.
// It returns how many cards were added.
func (p *Processor) ImportBatch() (int, error) {
	result, err := batch.ReadBatchFile(p.flags.ImportFile)
	if err != nil {
		return 0, err
	}

	for _, line := range result.Skipped {
		p.log.Warn().Str("file", p.flags.ImportFile).Int("line", line).Msg("skipping invalid line")
	}

	sess := session.New(p.store, session.Options{Logger: p.log, SkipWelcome: true})
	before := sess.Len()

	added, err := sess.AddAll(result.Cards())
	if err != nil {
		return added, fmt.Errorf("failed to import %s: %w", p.flags.ImportFile, err)
	}

	fmt.Fprintf(p.out, "Imported %d cards into %s (%d before, %d lines skipped)\n",
		added, p.store.Path(), before, len(result.Skipped))
	return added, nil
}

// ExportDeck writes the deck to flags.ExportPath as APKG, or CSV with --anki-csv
func (p *Processor) ExportDeck() (string, error) {
	format := anki.FormatAPKG
	if p.flags.AnkiCSV {
		format = anki.FormatCSV
	}

	cards := p.store.Load()
	outputPath := p.flags.ExportPath
	if err := anki.Export(cards, format, outputPath, p.flags.DeckName); err != nil {
		return "", fmt.Errorf("failed to generate %s: %w", format, err)
	}

	p.log.Info().Int("cards", len(cards)).Str("path", outputPath).Str("format", format.String()).Msg("exported deck")
	fmt.Fprintf(p.out, "Exported %d cards to %s\n", len(cards), outputPath)
	return outputPath, nil
}

// RunGUIMode opens the study window and blocks until it is closed
func (p *Processor) RunGUIMode(logViewer *gui.LogViewer) error {
	sess := session.New(p.store, session.Options{Logger: p.log})

	guiConfig := &gui.Config{
		DeckName: p.flags.DeckName,
	}

	app := gui.New(guiConfig, sess, p.log, logViewer)
	app.Run()

	return nil
}
