// Package session holds the study state shared by every window: the ordered
// deck, the current card index and whether the question or the answer is
// shown. Navigation wraps around the deck; add, update and delete validate
// their input, save the full deck through the store and then notify
// subscribers with DeckChanged and DisplayChanged events.
package session
