package session

// Event tells subscribers what changed.
type Event int

const (
	// DeckChanged is emitted after a card was added, updated or deleted.
	DeckChanged Event = iota + 1
	// DisplayChanged is emitted when the rendered text or flip label changed.
	DisplayChanged
)

func (e Event) String() string {
	switch e {
	case DeckChanged:
		return "deck-changed"
	case DisplayChanged:
		return "display-changed"
	default:
		return "unknown"
	}
}

// Subscribe registers fn for every event. Callbacks run synchronously in
// subscription order. The returned func removes the subscription.
func (s *Session) Subscribe(fn func(Event)) (unsubscribe func()) {
	s.nextSubID++
	id := s.nextSubID
	s.subscribers = append(s.subscribers, subscriber{id: id, fn: fn})

	return func() {
		for i, sub := range s.subscribers {
			if sub.id == id {
				s.subscribers = append(s.subscribers[:i], s.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (s *Session) emit(ev Event) {
	// Copy so a callback may unsubscribe while we iterate.
	subs := append([]subscriber(nil), s.subscribers...)
	for _, sub := range subs {
		sub.fn(ev)
	}
}
