package gui

import (
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// LogViewer collects log lines and shows them, newest first, in a read-only
// panel. It is an io.Writer so it can be handed to the logger before the
// fyne app exists; the widgets are only built when the panel is first shown.
type LogViewer struct {
	mu          sync.Mutex
	messages    []string // oldest first
	maxMessages int

	logEntry   *widget.Entry
	scrollView *container.Scroll
	panel      fyne.CanvasObject
}

// NewLogViewer creates a new log viewer
func NewLogViewer() *LogViewer {
	return &LogViewer{
		maxMessages: 1000, // Keep last 1000 messages
		messages:    make([]string, 0),
	}
}

// Write implements io.Writer; each non-empty line becomes one message
func (v *LogViewer) Write(p []byte) (int, error) {
	for _, line := range strings.Split(string(p), "\n") {
		if line = strings.TrimRight(line, "\r "); line != "" {
			v.AddMessage(line)
		}
	}
	return len(p), nil
}

// AddMessage adds a message to the log
func (v *LogViewer) AddMessage(message string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.messages = append(v.messages, message)

	// Drop the oldest once over the limit
	if len(v.messages) > v.maxMessages {
		v.messages = v.messages[len(v.messages)-v.maxMessages:]
	}

	if v.logEntry != nil {
		text := v.renderLocked()
		fyne.Do(func() {
			v.logEntry.SetText(text)
			v.scrollView.ScrollToTop()
		})
	}
}

// Messages returns a copy of the collected messages, newest first
func (v *LogViewer) Messages() []string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return newestFirst(v.messages)
}

// renderLocked returns the panel text, newest message on top
func (v *LogViewer) renderLocked() string {
	return strings.Join(newestFirst(v.messages), "\n")
}

func newestFirst(messages []string) []string {
	out := make([]string, len(messages))
	for i, msg := range messages {
		out[len(messages)-1-i] = msg
	}
	return out
}

// Clear clears all log messages
func (v *LogViewer) Clear() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.messages = v.messages[:0]

	if v.logEntry != nil {
		fyne.Do(func() {
			v.logEntry.SetText("")
			v.scrollView.ScrollToTop()
		})
	}
}

// Panel returns the log panel, creating it on first use. Must be called
// from the UI goroutine.
func (v *LogViewer) Panel() fyne.CanvasObject {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.panel != nil {
		return v.panel
	}

	// Read-only multiline entry keeps the text selectable
	v.logEntry = widget.NewMultiLineEntry()
	v.logEntry.Disable()
	v.logEntry.Wrapping = fyne.TextWrapWord
	v.logEntry.SetText(v.renderLocked())

	v.scrollView = container.NewScroll(v.logEntry)
	v.scrollView.SetMinSize(fyne.NewSize(0, 180))

	clearBtn := widget.NewButton("Clear", v.Clear)

	v.panel = container.NewBorder(
		widget.NewLabel("Log messages (newest first):"),
		container.NewHBox(clearBtn),
		nil,
		nil,
		v.scrollView,
	)
	return v.panel
}
