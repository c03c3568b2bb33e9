package deck

import (
	"errors"
	"strings"
)

// ErrEmptyField is returned when a question or answer is blank after trimming.
var ErrEmptyField = errors.New("question and answer cannot be empty")

// Card is a single question/answer pair. Cards have no ID; a card is
// identified by its position in the deck.
type Card struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// NewCard trims both fields and rejects the card if either is empty.
func NewCard(question, answer string) (Card, error) {
	q := strings.TrimSpace(question)
	a := strings.TrimSpace(answer)
	if q == "" || a == "" {
		return Card{}, ErrEmptyField
	}
	return Card{Question: q, Answer: a}, nil
}

// Summary returns the question on a single line, cut to at most n runes.
func (c Card) Summary(n int) string {
	flat := strings.ReplaceAll(c.Question, "\n", " ")
	runes := []rune(flat)
	if n >= 0 && len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
