package anki

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// fieldPolicy is a last pass over the escaped field. Card text is plain text,
// so after escaping there is no markup left for it to strip.
var fieldPolicy = bluemonday.UGCPolicy()

// FieldHTML converts plain card text to an Anki field value: the text is
// HTML-escaped and newlines become <br>.
func FieldHTML(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	clean := fieldPolicy.Sanitize(html.EscapeString(text))
	return strings.ReplaceAll(clean, "\n", "<br>")
}
