package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// FieldEntry edits one side of a card. Escape is not passed to the entry;
// it runs OnEscape, which the manager uses to reset the whole form.
type FieldEntry struct {
	widget.Entry
	OnEscape func()
}

// NewFieldEntry creates a card field editor. Answers use the multi-line
// variant so they can span several lines.
func NewFieldEntry(placeholder string, multiLine bool) *FieldEntry {
	e := &FieldEntry{}
	e.PlaceHolder = placeholder
	if multiLine {
		e.MultiLine = true
		e.Wrapping = fyne.TextWrapWord
	}
	e.ExtendBaseWidget(e)
	return e
}

// TypedKey handles key events
func (e *FieldEntry) TypedKey(key *fyne.KeyEvent) {
	if key.Name == fyne.KeyEscape && e.OnEscape != nil {
		e.OnEscape()
		return
	}
	e.Entry.TypedKey(key)
}
