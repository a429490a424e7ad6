package deck

import rand "math/rand/v2"

// DeckSize is the number of cards in a single deck.
const DeckSize = 52

// Shoe is an ordered multi-deck card supply, shuffled once at construction
// and consumed strictly from the front. The backing slice is never written
// after the shuffle, so copies of a Shoe share it and advance independent
// cursors.
type Shoe struct {
	cards []Card
	next  int
}

// NewShoe creates a shoe of the given number of 52-card decks, shuffled
// with the provided RNG. Panics if rng is nil or decks < 1.
func NewShoe(rng *rand.Rand, decks int) *Shoe {
	if rng == nil {
		panic("deck: NewShoe requires a non-nil rng")
	}
	if decks < 1 {
		panic("deck: NewShoe requires at least one deck")
	}

	s := &Shoe{cards: make([]Card, 0, decks*DeckSize)}
	for range decks {
		for _, suit := range Suits {
			for _, rank := range Ranks {
				s.cards = append(s.cards, NewCard(suit, rank))
			}
		}
	}

	// Fisher-Yates
	for i := len(s.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	}
	return s
}

// NewStackedShoe creates a shoe that deals the given cards in order. Used
// by tests and replays to force exact deals.
func NewStackedShoe(cards ...Card) *Shoe {
	stacked := make([]Card, len(cards))
	copy(stacked, cards)
	return &Shoe{cards: stacked}
}

// Draw removes and returns the front card. Panics if the shoe is empty;
// an eight-deck shoe cannot run out within a single round, so an empty
// draw is a programming error rather than a game condition.
func (s *Shoe) Draw() Card {
	if s.next >= len(s.cards) {
		panic("deck: draw from exhausted shoe")
	}
	c := s.cards[s.next]
	s.next++
	return c
}

// Remaining returns the number of cards left to deal.
func (s *Shoe) Remaining() int {
	return len(s.cards) - s.next
}

// Size returns the total number of cards the shoe started with.
func (s *Shoe) Size() int {
	return len(s.cards)
}

// Clone returns a shoe sharing the same card order with an independent
// cursor. Drawing from the clone does not advance the original.
func (s *Shoe) Clone() *Shoe {
	return &Shoe{cards: s.cards, next: s.next}
}
