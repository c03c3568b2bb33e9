// Package deck defines the flashcard type and the JSON file store that keeps
// the whole deck on disk. The store never fails a load: a missing, empty or
// unreadable file yields an empty deck so the application can always start.
package deck
