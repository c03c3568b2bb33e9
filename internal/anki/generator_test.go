package anki

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/flipdeck/internal/deck"
)

func TestDefaultGeneratorOptions(t *testing.T) {
	opts := DefaultGeneratorOptions()

	if opts.OutputPath != "anki_import.csv" {
		t.Errorf("Expected output path 'anki_import.csv', got '%s'", opts.OutputPath)
	}

	if !opts.IncludeHeaders {
		t.Error("Expected IncludeHeaders to be true")
	}
}

func TestNewGenerator(t *testing.T) {
	gen := NewGenerator(nil)
	if gen == nil {
		t.Fatal("NewGenerator returned nil")
	}
	if gen.options == nil {
		t.Error("Generator options should not be nil")
	}

	gen = NewGenerator(&GeneratorOptions{OutputPath: "custom.csv"})
	if gen.options.OutputPath != "custom.csv" {
		t.Errorf("Expected custom output path, got '%s'", gen.options.OutputPath)
	}
}

func TestAddCards(t *testing.T) {
	gen := NewGenerator(nil)

	gen.AddCard(deck.Card{Question: "Q1", Answer: "A1"})
	gen.AddCards([]deck.Card{{Question: "Q2", Answer: "A2"}, {Question: "Q3", Answer: "A3"}})

	cards := gen.cards
	if len(cards) != 3 {
		t.Fatalf("Expected 3 cards, got %d", len(cards))
	}
	if cards[2].Question != "Q3" {
		t.Errorf("Expected cards in insertion order, got %v", cards)
	}
}

func TestGenerateCSV(t *testing.T) {
	tempDir := t.TempDir()
	outputPath := filepath.Join(tempDir, "test.csv")

	gen := NewGenerator(&GeneratorOptions{OutputPath: outputPath, IncludeHeaders: true})
	gen.AddCard(deck.Card{Question: "Capital of Bulgaria?", Answer: "Sofia"})
	gen.AddCard(deck.Card{Question: "a, b\nand c", Answer: `<script>alert(1)</script>x < y`})

	if err := gen.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	file, err := os.Open(outputPath)
	if err != nil {
		t.Fatalf("Failed to open CSV: %v", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected 3 records (header + 2 cards), got %d", len(records))
	}

	if records[0][0] != "Front" || records[0][1] != "Back" {
		t.Errorf("Unexpected headers: %v", records[0])
	}

	if records[1][0] != "Capital of Bulgaria?" || records[1][1] != "Sofia" {
		t.Errorf("Unexpected first card: %v", records[1])
	}

	if records[2][0] != "a, b<br>and c" {
		t.Errorf("Expected newline converted to <br>, got %q", records[2][0])
	}

	if strings.Contains(records[2][1], "<script>") || !strings.Contains(records[2][1], "x &lt; y") {
		t.Errorf("Expected sanitized answer, got %q", records[2][1])
	}
}

func TestGenerateCSVWithoutHeaders(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "test.csv")

	gen := NewGenerator(&GeneratorOptions{OutputPath: outputPath})
	gen.AddCard(deck.Card{Question: "Q1", Answer: "A1"})

	if err := gen.GenerateCSV(); err != nil {
		t.Fatalf("GenerateCSV() error = %v", err)
	}

	data, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("Failed to read CSV: %v", err)
	}
	if string(data) != "Q1,A1\n" {
		t.Errorf("Unexpected CSV content: %q", data)
	}
}

func TestGenerateCSVBadPath(t *testing.T) {
	gen := NewGenerator(&GeneratorOptions{OutputPath: filepath.Join(t.TempDir(), "missing", "out.csv")})
	gen.AddCard(deck.Card{Question: "Q1", Answer: "A1"})

	if err := gen.GenerateCSV(); err == nil {
		t.Error("Expected error for unwritable path")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatAPKG, false},
		{"apkg", FormatAPKG, false},
		{"CSV", FormatCSV, false},
		{" csv ", FormatCSV, false},
		{"txt", FormatAPKG, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if FormatCSV.Extension() != ".csv" || FormatAPKG.Extension() != ".apkg" {
		t.Error("Unexpected format extensions")
	}
	if FormatCSV.String() != "CSV" || FormatAPKG.String() != "APKG" {
		t.Error("Unexpected format names")
	}
}

func TestExport(t *testing.T) {
	tempDir := t.TempDir()
	cards := []deck.Card{{Question: "Q1", Answer: "A1"}, {Question: "Q2", Answer: "A2"}}

	for _, format := range []Format{FormatAPKG, FormatCSV} {
		t.Run(format.String(), func(t *testing.T) {
			outputPath := filepath.Join(tempDir, "deck"+format.Extension())
			if err := Export(cards, format, outputPath, "Test"); err != nil {
				t.Fatalf("Export() error = %v", err)
			}
			info, err := os.Stat(outputPath)
			if err != nil {
				t.Fatalf("Export did not create %s: %v", outputPath, err)
			}
			if info.Size() == 0 {
				t.Errorf("Export created an empty file")
			}
		})
	}
}

func TestExportEmptyDeck(t *testing.T) {
	outputPath := filepath.Join(t.TempDir(), "deck.apkg")
	if err := Export(nil, FormatAPKG, outputPath, "Test"); err == nil {
		t.Error("Expected error when exporting an empty deck")
	}
	if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
		t.Error("No file should be written for an empty deck")
	}
}

func TestFieldHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Sofia", "Sofia"},
		{"newlines", "line one\r\nline two\nthree", "line one<br>line two<br>three"},
		{"escapes comparison", "1 < 2", "1 &lt; 2"},
		{"generic type", "What does List<T> mean?", "What does List&lt;T&gt; mean?"},
		{"tag-shaped text", "a<b and c>d", "a&lt;b and c&gt;d"},
		{"markup is shown as text", "<b>bold</b>", "&lt;b&gt;bold&lt;/b&gt;"},
		{"script is inert", `<script>alert("x")</script>ok`, "&lt;script&gt;alert(&#34;x&#34;)&lt;/script&gt;ok"},
		{"ampersand", "salt & pepper", "salt &amp; pepper"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FieldHTML(tt.in); got != tt.want {
				t.Errorf("FieldHTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
