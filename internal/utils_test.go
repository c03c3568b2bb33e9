package internal

import (
	"regexp"
	"testing"
)

func TestCardHash(t *testing.T) {
	id := CardHash("Capital of France?", "Paris")

	if !regexp.MustCompile(`^[0-9a-f]{16}$`).MatchString(id) {
		t.Errorf("CardHash() = %q, want 16 hex characters", id)
	}
	if again := CardHash("Capital of France?", "Paris"); again != id {
		t.Errorf("CardHash() is not stable: %q then %q", id, again)
	}
	if other := CardHash("Capital of France?", "Lyon"); other == id {
		t.Error("Different answers must give different hashes")
	}
	if CardHash("ab", "c") == CardHash("a", "bc") {
		t.Error("Field boundary must be part of the hash")
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Flashcards", "Flashcards"},
		{"My Deck", "My_Deck"},
		{"a/b\\c", "a_b_c"},
		{"ябълка-2_x", "ябълка-2_x"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := SanitizeFilename(tt.input); got != tt.want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
