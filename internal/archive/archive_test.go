package archive

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeDeck(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create deck file: %v", err)
	}
}

func TestArchiveDeck(t *testing.T) {
	tmpDir := t.TempDir()
	deckFile := filepath.Join(tmpDir, "flashcards.json")
	writeDeck(t, deckFile, `[{"question": "Q1", "answer": "A1"}]`)

	archived, err := ArchiveDeck(deckFile)
	if err != nil {
		t.Fatalf("ArchiveDeck failed: %v", err)
	}

	// Deck file is gone
	if _, err := os.Stat(deckFile); !os.IsNotExist(err) {
		t.Error("Deck file still exists after archiving")
	}

	if filepath.Dir(archived) != filepath.Join(tmpDir, DirName) {
		t.Errorf("Archive placed in unexpected directory: %s", archived)
	}

	name := filepath.Base(archived)
	if !strings.HasPrefix(name, "flashcards-") || !strings.HasSuffix(name, ".json") {
		t.Errorf("Unexpected archive name: %s", name)
	}

	data, err := os.ReadFile(archived)
	if err != nil {
		t.Fatalf("Failed to read archived deck: %v", err)
	}
	if !strings.Contains(string(data), `"Q1"`) {
		t.Errorf("Archived deck lost its content: %s", data)
	}
}

func TestArchiveDeck_NonExistentFile(t *testing.T) {
	_, err := ArchiveDeck(filepath.Join(t.TempDir(), "nonexistent.json"))
	if err == nil {
		t.Fatal("Expected error for non-existent deck file")
	}

	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("Expected 'does not exist' error, got: %v", err)
	}
}

func TestArchiveDeck_Directory(t *testing.T) {
	_, err := ArchiveDeck(t.TempDir())
	if err == nil || !strings.Contains(err.Error(), "is a directory") {
		t.Errorf("Expected directory error, got: %v", err)
	}
}

func TestArchiveDeck_MultipleArchives(t *testing.T) {
	tmpDir := t.TempDir()
	deckFile := filepath.Join(tmpDir, "flashcards.json")

	for i := 0; i < 2; i++ {
		writeDeck(t, deckFile, "[]")

		if i == 1 {
			time.Sleep(10 * time.Millisecond)
		}

		if _, err := ArchiveDeck(deckFile); err != nil {
			t.Fatalf("ArchiveDeck failed on iteration %d: %v", i, err)
		}
	}

	entries, err := os.ReadDir(filepath.Join(tmpDir, DirName))
	if err != nil {
		t.Fatalf("Failed to read archive directory: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries in archive directory, got %d", len(entries))
	}

	if entries[0].Name() == entries[1].Name() {
		t.Error("Archive names are not unique")
	}
}
