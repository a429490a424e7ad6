package deck

import (
	"testing"

	"github.com/lox/blackjack/internal/randutil"
)

func TestNewShoeComposition(t *testing.T) {
	t.Parallel()

	s := NewShoe(randutil.New(42), 8)
	if s.Size() != 8*DeckSize {
		t.Fatalf("Size() = %d, want %d", s.Size(), 8*DeckSize)
	}
	if s.Remaining() != s.Size() {
		t.Errorf("fresh shoe should have all cards remaining, got %d", s.Remaining())
	}

	// Every rank/suit combination must appear exactly once per deck.
	counts := make(map[Card]int)
	for s.Remaining() > 0 {
		c := s.Draw()
		if c.FaceDown {
			t.Fatal("shoe cards must be dealt face up")
		}
		counts[c]++
	}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			if got := counts[NewCard(suit, rank)]; got != 8 {
				t.Errorf("card %s%s appears %d times, want 8", rank, suit, got)
			}
		}
	}
}

func TestShoeDeterministicBySeed(t *testing.T) {
	t.Parallel()

	a := NewShoe(randutil.New(7), 2)
	b := NewShoe(randutil.New(7), 2)
	for a.Remaining() > 0 {
		if ca, cb := a.Draw(), b.Draw(); ca != cb {
			t.Fatalf("same seed produced different orders: %s vs %s", ca, cb)
		}
	}
}

func TestStackedShoeDealsInOrder(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("As Kd 5h 2c")
	s := NewStackedShoe(cards...)
	for i, want := range cards {
		if got := s.Draw(); got != want {
			t.Errorf("draw %d = %s, want %s", i, got, want)
		}
	}
	if s.Remaining() != 0 {
		t.Errorf("Remaining() = %d, want 0", s.Remaining())
	}
}

func TestShoeCloneIndependentCursor(t *testing.T) {
	t.Parallel()

	s := NewStackedShoe(MustParseCards("As Kd 5h")...)
	s.Draw()

	c := s.Clone()
	if got := c.Draw(); got != NewCard(Diamonds, King) {
		t.Errorf("clone should resume from the original cursor, got %s", got)
	}
	if s.Remaining() != 2 {
		t.Errorf("drawing from clone advanced the original: Remaining() = %d, want 2", s.Remaining())
	}
}

func TestDrawFromEmptyShoePanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Error("Draw() on an empty shoe should panic")
		}
	}()
	NewStackedShoe().Draw()
}

func TestNewShoePanicsOnNilRNG(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Error("NewShoe(nil, 1) should panic")
		}
	}()
	NewShoe(nil, 1)
}
