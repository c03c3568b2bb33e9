// Package processor runs what the command line asked for: the maintenance
// actions (import, export, archive) against the deck file, or the study GUI.
// It is the coordinator between the cli, deck, session and gui packages.
package processor
