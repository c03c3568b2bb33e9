package deck

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
)

// DefaultFileName is the deck file looked up in the working directory.
const DefaultFileName = "flashcards.json"

// ErrSave wraps every failure to write the deck file.
var ErrSave = errors.New("failed to save flashcards")

// Store loads and saves the full deck from a single JSON file.
// It assumes a single process and a single writer.
type Store struct {
	path string
	log  zerolog.Logger
}

// NewStore creates a store for the given file. An empty path means
// DefaultFileName in the working directory.
func NewStore(path string, log zerolog.Logger) *Store {
	if path == "" {
		path = DefaultFileName
	}
	return &Store{
		path: path,
		log:  log.With().Str("component", "store").Str("file", path).Logger(),
	}
}

// Path returns the deck file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the deck file. Every failure degrades to an empty deck and is
// only reported through the log.
func (s *Store) Load() []Card {
	info, err := os.Stat(s.path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		s.log.Info().Msg("flashcard file not found, starting with an empty deck")
		return []Card{}
	case err != nil:
		s.log.Error().Err(err).Msg("unexpected error while loading flashcards")
		return []Card{}
	case info.IsDir():
		s.log.Error().Msg("flashcard path is a directory, starting with an empty deck")
		return []Card{}
	case info.Size() == 0:
		s.log.Info().Msg("flashcard file is empty, starting with an empty deck")
		return []Card{}
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Error().Err(err).Msg("unexpected error while loading flashcards")
		return []Card{}
	}

	var cards []Card
	if err := json.Unmarshal(data, &cards); err != nil {
		s.log.Error().Err(err).Msg("could not decode flashcard file, starting with an empty deck")
		return []Card{}
	}
	if cards == nil {
		cards = []Card{}
	}

	s.log.Debug().Int("cards", len(cards)).Msg("flashcards loaded")
	return cards
}

// Save overwrites the deck file with the full deck as indented JSON.
// The error wraps ErrSave; the caller's in-memory deck is left untouched.
func (s *Store) Save(cards []Card) error {
	if cards == nil {
		cards = []Card{}
	}

	data, err := json.MarshalIndent(cards, "", "    ")
	if err != nil {
		s.log.Error().Err(err).Msg("could not encode flashcards")
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	if err := os.WriteFile(s.path, data, 0644); err != nil {
		s.log.Error().Err(err).Msg("could not save flashcards")
		return fmt.Errorf("%w: %w", ErrSave, err)
	}

	s.log.Info().Int("cards", len(cards)).Msg("flashcards saved")
	return nil
}
