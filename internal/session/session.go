package session

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"codeberg.org/snonux/flipdeck/internal/deck"
)

// NoSelection is the target index used when no card is selected.
const NoSelection = -1

// Texts shown by the study view.
const (
	WelcomeQuestion   = "Welcome! Please use the 'Manage Cards' button."
	WelcomeAnswer     = "This is the answer."
	PlaceholderText   = "No cards available. Add new cards via 'Manage Cards'."
	LabelShowAnswer   = "Show Answer"
	LabelShowQuestion = "Show Question"
	LabelNoCard       = "No Card"
)

// Validation errors. None of them mutate the deck or trigger a save.
var (
	ErrEmptyField   = deck.ErrEmptyField
	ErrNoSelection  = errors.New("please select a card first")
	ErrInvalidIndex = errors.New("selected card does not exist")
	ErrNotConfirmed = errors.New("deletion was not confirmed")
)

// Store is the persistence the session writes through on every mutation.
type Store interface {
	Load() []deck.Card
	Save(cards []deck.Card) error
}

// Options configures a new session.
type Options struct {
	Logger zerolog.Logger
	// SkipWelcome leaves an empty deck empty instead of seeding the
	// in-memory welcome card. Used by the non-interactive commands.
	SkipWelcome bool
}

// State tells whether there is a card to show.
type State int

const (
	Empty State = iota
	Browsing
)

func (s State) String() string {
	if s == Browsing {
		return "browsing"
	}
	return "empty"
}

// View is what the study window renders.
type View struct {
	Text            string
	FlipLabel       string
	Index           int
	Total           int
	ShowingQuestion bool
	Empty           bool
}

type subscriber struct {
	id int
	fn func(Event)
}

// Session holds the deck, the current index and the question/answer flag.
// Every view shares one Session; all mutations go through its methods.
// A Session is not safe for concurrent use and is meant to be driven from
// the UI event goroutine.
type Session struct {
	store Store
	log   zerolog.Logger

	cards           []deck.Card
	index           int
	showingQuestion bool

	subscribers []subscriber
	nextSubID   int
}

// New loads the deck from store. An empty deck is seeded with a welcome card
// kept in memory only, unless opts.SkipWelcome is set.
func New(store Store, opts Options) *Session {
	s := &Session{
		store:           store,
		log:             opts.Logger.With().Str("component", "session").Logger(),
		showingQuestion: true,
	}

	s.cards = store.Load()
	if len(s.cards) == 0 && !opts.SkipWelcome {
		s.cards = append(s.cards, deck.Card{Question: WelcomeQuestion, Answer: WelcomeAnswer})
	}

	s.log.Debug().Int("cards", len(s.cards)).Msg("session started")
	return s
}

// State returns Empty when the deck has no cards and Browsing otherwise.
func (s *Session) State() State {
	if len(s.cards) == 0 {
		return Empty
	}
	return Browsing
}

// Len returns the number of cards.
func (s *Session) Len() int {
	return len(s.cards)
}

// Index returns the current card index (0 when the deck is empty).
func (s *Session) Index() int {
	return s.index
}

// ShowingQuestion reports which face of the current card is shown.
func (s *Session) ShowingQuestion() bool {
	return s.showingQuestion
}

// Card returns the card at i.
func (s *Session) Card(i int) (deck.Card, bool) {
	if i < 0 || i >= len(s.cards) {
		return deck.Card{}, false
	}
	return s.cards[i], true
}

// Cards returns a copy of the deck in navigation order.
func (s *Session) Cards() []deck.Card {
	return append([]deck.Card(nil), s.cards...)
}

// View returns the text and flip label for the current state.
func (s *Session) View() View {
	if len(s.cards) == 0 {
		return View{
			Text:            PlaceholderText,
			FlipLabel:       LabelNoCard,
			ShowingQuestion: true,
			Empty:           true,
		}
	}

	card := s.cards[s.index]
	v := View{
		Index:           s.index,
		Total:           len(s.cards),
		ShowingQuestion: s.showingQuestion,
	}
	if s.showingQuestion {
		v.Text = card.Question
		v.FlipLabel = LabelShowAnswer
	} else {
		v.Text = card.Answer
		v.FlipLabel = LabelShowQuestion
	}
	return v
}

// Next moves to the following card, wrapping to the first one.
func (s *Session) Next() {
	if len(s.cards) == 0 {
		return
	}
	s.index = (s.index + 1) % len(s.cards)
	s.showingQuestion = true
	s.emit(DisplayChanged)
}

// Previous moves to the preceding card, wrapping to the last one.
func (s *Session) Previous() {
	if len(s.cards) == 0 {
		return
	}
	s.index = (s.index - 1 + len(s.cards)) % len(s.cards)
	s.showingQuestion = true
	s.emit(DisplayChanged)
}

// Flip toggles between question and answer of the current card.
func (s *Session) Flip() {
	if len(s.cards) == 0 {
		return
	}
	s.showingQuestion = !s.showingQuestion
	s.emit(DisplayChanged)
}

// Add appends a new card and saves the deck.
func (s *Session) Add(question, answer string) error {
	card, err := deck.NewCard(question, answer)
	if err != nil {
		return err
	}

	wasEmpty := len(s.cards) == 0
	s.cards = append(s.cards, card)
	if wasEmpty {
		s.index = 0
		s.showingQuestion = true
	}

	err = s.persist("add")
	s.emit(DeckChanged)
	if wasEmpty {
		s.emit(DisplayChanged)
	}
	return err
}

// AddAll appends every card that passes validation and saves once.
// It returns how many cards were added.
func (s *Session) AddAll(cards []deck.Card) (int, error) {
	wasEmpty := len(s.cards) == 0
	added := 0
	for _, c := range cards {
		card, err := deck.NewCard(c.Question, c.Answer)
		if err != nil {
			s.log.Warn().Str("question", c.Question).Msg("skipping card with empty field")
			continue
		}
		s.cards = append(s.cards, card)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	if wasEmpty {
		s.index = 0
		s.showingQuestion = true
	}

	err := s.persist("import")
	s.emit(DeckChanged)
	if wasEmpty {
		s.emit(DisplayChanged)
	}
	return added, err
}

// Update overwrites the card at target and saves the deck. The shown face is
// kept because the card at the current index keeps its position.
func (s *Session) Update(target int, question, answer string) error {
	if err := s.checkTarget(target); err != nil {
		return err
	}
	card, err := deck.NewCard(question, answer)
	if err != nil {
		return err
	}

	s.cards[target] = card

	err = s.persist("update")
	s.emit(DeckChanged)
	if target == s.index {
		s.emit(DisplayChanged)
	}
	return err
}

// Delete removes the card at target once the user has confirmed it, saves
// the deck and clamps the current index.
func (s *Session) Delete(target int, confirmed bool) error {
	if err := s.checkTarget(target); err != nil {
		return err
	}
	if !confirmed {
		return ErrNotConfirmed
	}

	s.cards = append(s.cards[:target], s.cards[target+1:]...)

	// The card under the index changed when the removed one was at or
	// before it; everything after the index is unaffected.
	if target <= s.index {
		s.showingQuestion = true
	}
	if s.index >= len(s.cards) {
		s.index = 0
	}

	err := s.persist("delete")
	s.emit(DeckChanged)
	s.emit(DisplayChanged)
	return err
}

func (s *Session) checkTarget(target int) error {
	if target == NoSelection {
		return ErrNoSelection
	}
	if target < 0 || target >= len(s.cards) {
		return ErrInvalidIndex
	}
	return nil
}

// persist writes the full deck. The in-memory deck is kept either way.
func (s *Session) persist(op string) error {
	if err := s.store.Save(s.cards); err != nil {
		s.log.Warn().Str("op", op).Int("cards", len(s.cards)).
			Msg("deck changed in memory but could not be saved")
		return fmt.Errorf("%s: %w", op, err)
	}
	s.log.Debug().Str("op", op).Int("cards", len(s.cards)).Msg("deck saved")
	return nil
}
