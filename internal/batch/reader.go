// Package batch reads plain-text card lists for bulk import into a deck.
package batch

import (
	"fmt"
	"os"
	"strings"

	"codeberg.org/snonux/flipdeck/internal/deck"
)

// Entry is one parsed line of a batch file
type Entry struct {
	Line     int
	Question string
	Answer   string
}

// Card converts the entry to a deck card
func (e Entry) Card() deck.Card {
	return deck.Card{Question: e.Question, Answer: e.Answer}
}

// Result holds the parsed entries and the lines that were skipped
type Result struct {
	Entries []Entry
	Skipped []int
}

// Cards returns all entries as deck cards, in file order
func (r Result) Cards() []deck.Card {
	cards := make([]deck.Card, 0, len(r.Entries))
	for _, e := range r.Entries {
		cards = append(cards, e.Card())
	}
	return cards
}

// ReadBatchFile reads cards from a file, one card per line.
// Supports formats:
// - Equals separated: "What is 2+2? = 4" (split on the first '=')
// - Tab separated: "question<TAB>answer" (Anki plain-text export)
// Blank lines and lines starting with '#' are ignored. Lines with an empty
// question or answer are reported in Result.Skipped.
func ReadBatchFile(filename string) (Result, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read batch file: %w", err)
	}
	return Parse(string(content)), nil
}

// Parse parses batch content already held in memory
func Parse(content string) Result {
	var result Result

	content = strings.ReplaceAll(content, "\r\n", "\n")
	for i, line := range strings.Split(content, "\n") {
		lineNo := i + 1
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		question, answer, ok := splitEntry(line)
		if !ok {
			result.Skipped = append(result.Skipped, lineNo)
			continue
		}

		card, err := deck.NewCard(question, answer)
		if err != nil {
			result.Skipped = append(result.Skipped, lineNo)
			continue
		}

		result.Entries = append(result.Entries, Entry{
			Line:     lineNo,
			Question: card.Question,
			Answer:   card.Answer,
		})
	}

	return result
}

// splitEntry prefers a tab separator so answers may contain '='
func splitEntry(line string) (question, answer string, ok bool) {
	if q, a, found := strings.Cut(line, "\t"); found {
		return q, a, true
	}
	if q, a, found := strings.Cut(line, "="); found {
		return q, a, true
	}
	return "", "", false
}
