package testutil

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"codeberg.org/snonux/flipdeck/internal/deck"
)

// DeckPath returns a deck file path inside a fresh temporary directory.
// The file itself is not created.
func DeckPath(t *testing.T) string {
	t.Helper()

	return filepath.Join(t.TempDir(), deck.DefaultFileName)
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// WriteDeckFile encodes cards the way the store does and writes them to path.
func WriteDeckFile(t *testing.T, path string, cards []deck.Card) {
	t.Helper()

	data, err := json.MarshalIndent(cards, "", "    ")
	if err != nil {
		t.Fatalf("Failed to encode cards: %v", err)
	}
	CreateTestFile(t, path, data)
}

// ReadDeckFile decodes the deck file at path, failing the test on any error.
func ReadDeckFile(t *testing.T, path string) []deck.Card {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read deck file %s: %v", path, err)
	}

	var cards []deck.Card
	if err := json.Unmarshal(data, &cards); err != nil {
		t.Fatalf("Deck file %s is not valid JSON: %v", path, err)
	}
	return cards
}

// SampleCards returns n distinct cards named Q1/A1 ... Qn/An.
func SampleCards(n int) []deck.Card {
	cards := make([]deck.Card, 0, n)
	for i := 1; i <= n; i++ {
		cards = append(cards, deck.Card{
			Question: fmt.Sprintf("Q%d", i),
			Answer:   fmt.Sprintf("A%d", i),
		})
	}
	return cards
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
