// Package archive moves a deck file out of the way so the next start begins
// with an empty deck, keeping the old cards in a timestamped copy.
package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// DirName is the directory created next to the deck file.
const DirName = "archive"

// ArchiveDeck moves the deck file into an archive directory next to it,
// named <base>-YYYYMMDD-HHMMSS<ext>, and returns the new path.
func ArchiveDeck(deckFile string) (string, error) {
	info, err := os.Stat(deckFile)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("deck file does not exist: %s", deckFile)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat deck file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("deck path is a directory: %s", deckFile)
	}

	archiveDir := filepath.Join(filepath.Dir(deckFile), DirName)
	if err := os.MkdirAll(archiveDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create archive directory: %w", err)
	}

	ext := filepath.Ext(deckFile)
	base := strings.TrimSuffix(filepath.Base(deckFile), ext)

	now := time.Now()
	archivePath := filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, now.Format("20060102-150405"), ext))

	// Two archives within the same second get microseconds appended
	if _, err := os.Stat(archivePath); err == nil {
		archivePath = filepath.Join(archiveDir, fmt.Sprintf("%s-%s%s", base, now.Format("20060102-150405.000000"), ext))
	}

	if err := os.Rename(deckFile, archivePath); err != nil {
		return "", fmt.Errorf("failed to archive deck file: %w", err)
	}

	return archivePath, nil
}
