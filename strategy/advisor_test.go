package strategy

import (
	"errors"
	"testing"

	"github.com/lox/blackjack/deck"
	"github.com/lox/blackjack/engine"
	"github.com/lox/blackjack/internal/randutil"
)

// dealRound stacks the shoe with the given cards (player, dealer,
// player, dealer hole, then draws in order) and advances through the
// opening deal.
func dealRound(t *testing.T, rules engine.Rules, cards string) *engine.Round {
	t.Helper()
	shoe := deck.NewStackedShoe(deck.MustParseCards(cards)...)
	r := engine.NewRound(randutil.New(1), rules, 10, engine.WithShoe(shoe))
	r, err := r.Advance(engine.NoAction)
	if err != nil {
		t.Fatalf("opening deal failed: %v", err)
	}
	return r
}

func mustSuggest(t *testing.T, r *engine.Round) engine.Action {
	t.Helper()
	action, err := Suggest(r)
	if err != nil {
		t.Fatalf("Suggest failed: %v", err)
	}
	return action
}

func TestSuggestHardTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string // player, dealer up, player, dealer hole
		want  engine.Action
	}{
		{"hard 16 vs 10 hits", "Ts Td 6h 5c", engine.Hit},
		{"hard 16 vs 6 stands", "Ts 6d 6h 5c", engine.Stand},
		{"hard 12 vs 2 hits", "Ts 2d 2h 5c", engine.Hit},
		{"hard 12 vs 4 stands", "Ts 4d 2h 5c", engine.Stand},
		{"hard 11 vs 10 doubles", "6s Td 5h 5c", engine.Double},
		{"hard 11 vs ace hits", "6s Ad 5h 8c", engine.Hit},
		{"hard 10 vs 9 doubles", "6s 9d 4h 5c", engine.Double},
		{"hard 9 vs 3 doubles", "6s 3d 3h 5c", engine.Double},
		{"hard 9 vs 2 hits", "6s 2d 3h 5c", engine.Hit},
		{"hard 8 vs 5 hits", "5s 5d 3h 6c", engine.Hit},
		{"hard 17 vs ace stands", "Ts Ad 7h 8c", engine.Stand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := dealRound(t, engine.VegasRules(), tt.cards)
			if got := mustSuggest(t, r); got != tt.want {
				t.Errorf("Suggest() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSuggestSoftTotals(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		want  engine.Action
	}{
		{"soft 18 vs 3 doubles", "As 3d 7h 5c", engine.Double},
		{"soft 18 vs 9 hits", "As 9d 7h 5c", engine.Hit},
		{"soft 18 vs 7 stands", "As 7d 7h 5c", engine.Stand},
		{"soft 17 vs 6 doubles", "As 6d 6h 5c", engine.Double},
		{"soft 13 vs 5 doubles", "As 5d 2h 5c", engine.Double},
		{"soft 13 vs 4 hits", "As 4d 2h 5c", engine.Hit},
		{"soft 19 vs 6 stands", "As 6d 8h 5c", engine.Stand},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := dealRound(t, engine.VegasRules(), tt.cards)
			if got := mustSuggest(t, r); got != tt.want {
				t.Errorf("Suggest() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestSuggestPairs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		want  engine.Action
	}{
		{"eights vs 6 split", "8s 6d 8h 5c", engine.Split},
		{"eights vs 10 split", "8s Td 8h 5c", engine.Split},
		{"aces vs 10 split", "As Td Ah 5c", engine.Split},
		{"nines vs 7 stand", "9s 7d 9h 5c", engine.Stand},
		{"nines vs 6 split", "9s 6d 9h 5c", engine.Split},
		{"tens vs 6 stand", "Ts 6d Th 5c", engine.Stand},
		{"fives vs 6 double", "5s 6d 5h 5c", engine.Double},
		{"fours vs 5 split", "4s 5d 4h 5c", engine.Split},
		{"fours vs 2 hit", "4s 2d 4h 5c", engine.Hit},
		{"twos vs 8 hit", "2s 8d 2h 5c", engine.Hit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := dealRound(t, engine.VegasRules(), tt.cards)
			if got := mustSuggest(t, r); got != tt.want {
				t.Errorf("Suggest() = %s, want %s", got, tt.want)
			}
		})
	}
}

// TestSuggestFallsBackWhenSplitIllegal plays 8,8 where splitting is
// disabled. The pair chart no longer applies; hard 16 vs 6 stands.
func TestSuggestFallsBackWhenSplitIllegal(t *testing.T) {
	t.Parallel()

	rules := engine.VegasRules()
	rules.MaxHandsAfterSplit = 1
	r := dealRound(t, rules, "8s 6d 8h 5c")
	if got := mustSuggest(t, r); got != engine.Stand {
		t.Errorf("Suggest() = %s, want %s", got, engine.Stand)
	}
}

// TestSuggestDoubleFallsBackAfterHit builds a three-card 11, where the
// chart says double but only hit remains legal.
func TestSuggestDoubleFallsBackAfterHit(t *testing.T) {
	t.Parallel()

	// Player 2,3 vs upcard ten; hit draws 6 for a three-card 11.
	r := dealRound(t, engine.VegasRules(), "2s Td 3h 5c 6d")
	r = mustAdvance(t, r, engine.Hit)

	if got := mustSuggest(t, r); got != engine.Hit {
		t.Errorf("Suggest() = %s, want %s", got, engine.Hit)
	}
}

// TestSuggestDoubleModeRestriction checks the chart respects the house
// doubling restriction: hard 9 doubles under any-total rules but falls
// back to hit when doubling is hard 10-11 only.
func TestSuggestDoubleModeRestriction(t *testing.T) {
	t.Parallel()

	rules := engine.VegasRules()
	rules.DoubleOn = engine.DoubleHard10To11
	r := dealRound(t, rules, "6s 3d 3h 5c")
	if got := mustSuggest(t, r); got != engine.Hit {
		t.Errorf("Suggest() = %s, want %s", got, engine.Hit)
	}
}

// TestSuggestSplitAcesNoHit gives a split-ace hand a low second card
// with hitting split aces disallowed; the only sensible action left is
// stand.
func TestSuggestSplitAcesNoHit(t *testing.T) {
	t.Parallel()

	rules := engine.VegasRules()
	rules.SplitAces = 1
	// Aces vs 6; split hands draw 4 and 5.
	r := dealRound(t, rules, "As 6d Ah 5c 4s 5d")
	r = mustAdvance(t, r, engine.Split)
	for r.Phase() == engine.Dealing {
		r = mustAdvance(t, r, engine.NoAction)
	}
	if r.Phase() != engine.PlayerTurn {
		t.Fatalf("phase = %s, want %s", r.Phase(), engine.PlayerTurn)
	}

	if got := mustSuggest(t, r); got != engine.Stand {
		t.Errorf("Suggest() = %s, want %s", got, engine.Stand)
	}
}

func TestSuggestOutsidePlayerTurn(t *testing.T) {
	t.Parallel()

	r := engine.NewRound(randutil.New(1), engine.VegasRules(), 10)
	if _, err := Suggest(r); !errors.Is(err, engine.ErrNotPlayerTurn) {
		t.Errorf("Suggest before dealing: err = %v, want ErrNotPlayerTurn", err)
	}
}

func mustAdvance(t *testing.T, r *engine.Round, action engine.Action) *engine.Round {
	t.Helper()
	next, err := r.Advance(action)
	if err != nil {
		t.Fatalf("Advance(%s) failed: %v", action, err)
	}
	return next
}
