package internal

import (
	"crypto/md5"
	"encoding/hex"
	"strings"
	"unicode"
)

// CardHash returns a stable ID for a card's text: md5(question, answer)[:16]
// The same question and answer always give the same hash.
func CardHash(question, answer string) string {
	hash := md5.Sum([]byte(question + "\x1f" + answer))
	return hex.EncodeToString(hash[:])[:16]
}

// SanitizeFilename creates a safe filename from a string
func SanitizeFilename(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
