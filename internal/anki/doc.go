// Package anki exports a deck for import into Anki, either as a complete
// .apkg package (SQLite collection inside a zip) or as a two-column CSV file.
package anki
