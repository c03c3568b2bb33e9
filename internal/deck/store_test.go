package deck_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/snonux/flipdeck/internal/deck"
	"codeberg.org/snonux/flipdeck/internal/testutil"
)

func newStore(t *testing.T, path string) (*deck.Store, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	return deck.NewStore(path, zerolog.New(&buf)), &buf
}

func TestNewStoreDefaultPath(t *testing.T) {
	store := deck.NewStore("", zerolog.Nop())
	assert.Equal(t, deck.DefaultFileName, store.Path())
}

func TestLoadDegradesToEmptyDeck(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(t *testing.T) string
		wantLevel string
	}{
		{
			name: "missing file",
			setup: func(t *testing.T) string {
				return testutil.DeckPath(t)
			},
			wantLevel: `"level":"info"`,
		},
		{
			name: "empty file",
			setup: func(t *testing.T) string {
				path := testutil.DeckPath(t)
				testutil.CreateTestFile(t, path, nil)
				return path
			},
			wantLevel: `"level":"info"`,
		},
		{
			name: "malformed json",
			setup: func(t *testing.T) string {
				path := testutil.DeckPath(t)
				testutil.CreateTestFile(t, path, []byte(`[{"question": "Q1", "answer": `))
				return path
			},
			wantLevel: `"level":"error"`,
		},
		{
			name: "object instead of array",
			setup: func(t *testing.T) string {
				path := testutil.DeckPath(t)
				testutil.CreateTestFile(t, path, []byte(`{"question": "Q1", "answer": "A1"}`))
				return path
			},
			wantLevel: `"level":"error"`,
		},
		{
			name: "directory instead of file",
			setup: func(t *testing.T) string {
				path := testutil.DeckPath(t)
				require.NoError(t, os.MkdirAll(filepath.Join(path, "nested"), 0755))
				return path
			},
			wantLevel: `"level":"error"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, logs := newStore(t, tt.setup(t))

			cards := store.Load()

			assert.NotNil(t, cards)
			assert.Empty(t, cards)
			assert.Contains(t, logs.String(), tt.wantLevel)
		})
	}
}

func TestLoadNullDeck(t *testing.T) {
	path := testutil.DeckPath(t)
	testutil.CreateTestFile(t, path, []byte("null"))
	store, _ := newStore(t, path)

	cards := store.Load()
	assert.NotNil(t, cards)
	assert.Empty(t, cards)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	decks := map[string][]deck.Card{
		"empty":  {},
		"single": testutil.SampleCards(1),
		"many":   testutil.SampleCards(25),
		"unicode and newlines": {
			{Question: "Какво е ябълка?", Answer: "apple"},
			{Question: "line one\nline two", Answer: `quotes "and" \ slashes`},
			{Question: "dup", Answer: "dup"},
			{Question: "dup", Answer: "dup"},
		},
	}

	for name, cards := range decks {
		t.Run(name, func(t *testing.T) {
			store, _ := newStore(t, testutil.DeckPath(t))

			require.NoError(t, store.Save(cards))
			assert.Equal(t, cards, store.Load())
		})
	}
}

func TestSaveWritesIndentedArray(t *testing.T) {
	path := testutil.DeckPath(t)
	store, _ := newStore(t, path)

	require.NoError(t, store.Save([]deck.Card{{Question: "Q1", Answer: "A1"}}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	want := "[\n    {\n        \"question\": \"Q1\",\n        \"answer\": \"A1\"\n    }\n]"
	assert.Equal(t, want, string(data))
}

func TestSaveNilDeckWritesEmptyArray(t *testing.T) {
	path := testutil.DeckPath(t)
	store, _ := newStore(t, path)

	require.NoError(t, store.Save(nil))
	testutil.AssertFileContains(t, path, "[]")
}

func TestSaveOverwritesPreviousContent(t *testing.T) {
	path := testutil.DeckPath(t)
	testutil.WriteDeckFile(t, path, testutil.SampleCards(3))
	store, _ := newStore(t, path)

	require.NoError(t, store.Save(testutil.SampleCards(1)))
	assert.Equal(t, testutil.SampleCards(1), testutil.ReadDeckFile(t, path))
}

func TestSaveFailureIsReportedAndLogged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "dir", deck.DefaultFileName)
	store, logs := newStore(t, path)

	err := store.Save(testutil.SampleCards(2))

	require.ErrorIs(t, err, deck.ErrSave)
	assert.True(t, strings.Contains(logs.String(), `"level":"error"`), "expected error log, got %s", logs.String())
	testutil.AssertFileNotExists(t, path)
}
