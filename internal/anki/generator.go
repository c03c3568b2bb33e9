package anki

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/flipdeck/internal/deck"
)

// DefaultDeckName is used when no deck name is given
const DefaultDeckName = "Flashcards"

// Format selects the export file type
type Format int

const (
	FormatAPKG Format = iota
	FormatCSV
)

// Extension returns the file extension for the format, including the dot
func (f Format) Extension() string {
	if f == FormatCSV {
		return ".csv"
	}
	return ".apkg"
}

// String returns the human readable format name
func (f Format) String() string {
	if f == FormatCSV {
		return "CSV"
	}
	return "APKG"
}

// ParseFormat maps "apkg" or "csv" (any case) to a Format
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "apkg":
		return FormatAPKG, nil
	case "csv":
		return FormatCSV, nil
	default:
		return FormatAPKG, fmt.Errorf("unknown export format %q (want apkg or csv)", name)
	}
}

// GeneratorOptions configures the Anki export
type GeneratorOptions struct {
	OutputPath     string // Output CSV file path
	IncludeHeaders bool   // Include CSV headers
}

// DefaultGeneratorOptions returns sensible defaults
func DefaultGeneratorOptions() *GeneratorOptions {
	return &GeneratorOptions{
		OutputPath:     "anki_import.csv",
		IncludeHeaders: true,
	}
}

// Generator creates Anki-compatible import files
type Generator struct {
	options *GeneratorOptions
	cards   []deck.Card
}

// NewGenerator creates a new Anki generator
func NewGenerator(options *GeneratorOptions) *Generator {
	if options == nil {
		options = DefaultGeneratorOptions()
	}
	return &Generator{
		options: options,
		cards:   make([]deck.Card, 0),
	}
}

// AddCard adds a card to the collection
func (g *Generator) AddCard(card deck.Card) {
	g.cards = append(g.cards, card)
}

// AddCards adds cards in order
func (g *Generator) AddCards(cards []deck.Card) {
	g.cards = append(g.cards, cards...)
}

// GenerateCSV creates a CSV file for Anki import
func (g *Generator) GenerateCSV() error {
	file, err := os.Create(g.options.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if g.options.IncludeHeaders {
		if err := writer.Write([]string{"Front", "Back"}); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}

	for _, card := range g.cards {
		record := []string{FieldHTML(card.Question), FieldHTML(card.Answer)}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write card: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file: %w", err)
	}
	return nil
}

// GenerateAPKG creates a proper .apkg file for Anki import
func (g *Generator) GenerateAPKG(outputPath, deckName string) error {
	apkgGen := NewAPKGGenerator(deckName)
	for _, card := range g.cards {
		apkgGen.AddCard(card)
	}
	return apkgGen.GenerateAPKG(outputPath)
}

// Export writes cards to outputPath in the given format
func Export(cards []deck.Card, format Format, outputPath, deckName string) error {
	if len(cards) == 0 {
		return fmt.Errorf("no cards to export")
	}

	switch format {
	case FormatCSV:
		gen := NewGenerator(&GeneratorOptions{OutputPath: outputPath, IncludeHeaders: true})
		gen.AddCards(cards)
		return gen.GenerateCSV()
	default:
		gen := NewGenerator(nil)
		gen.AddCards(cards)
		return gen.GenerateAPKG(outputPath, deckName)
	}
}
