package testutil

import (
	"fmt"

	"codeberg.org/snonux/flipdeck/internal/deck"
)

// MockStore is an in-memory deck store that records every save.
type MockStore struct {
	Cards     []deck.Card
	Saved     [][]deck.Card
	SaveError error
	LoadCalls int
}

// NewMockStore creates a mock store preloaded with cards.
func NewMockStore(cards ...deck.Card) *MockStore {
	return &MockStore{Cards: append([]deck.Card{}, cards...)}
}

// Load returns a copy of the preloaded cards.
func (m *MockStore) Load() []deck.Card {
	m.LoadCalls++
	return append([]deck.Card{}, m.Cards...)
}

// Save records a snapshot of cards, or fails with SaveError when set.
func (m *MockStore) Save(cards []deck.Card) error {
	if m.SaveError != nil {
		return fmt.Errorf("%w: %w", deck.ErrSave, m.SaveError)
	}
	snapshot := append([]deck.Card{}, cards...)
	m.Saved = append(m.Saved, snapshot)
	m.Cards = snapshot
	return nil
}

// SaveCount returns how many successful saves were recorded.
func (m *MockStore) SaveCount() int {
	return len(m.Saved)
}

// LastSaved returns the most recent snapshot, or nil if nothing was saved.
func (m *MockStore) LastSaved() []deck.Card {
	if len(m.Saved) == 0 {
		return nil
	}
	return m.Saved[len(m.Saved)-1]
}
