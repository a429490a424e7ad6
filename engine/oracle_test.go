package engine

import (
	"errors"
	"slices"
	"testing"

	"github.com/lox/blackjack/deck"
	"github.com/lox/blackjack/internal/randutil"
)

func TestLegalActionsOpeningHand(t *testing.T) {
	t.Parallel()

	r := dealRound(t, VegasRules(), 10, "9s 6h 7d 5c")

	legal, err := r.LegalActions()
	if err != nil {
		t.Fatalf("LegalActions() failed: %v", err)
	}
	want := []Action{Hit, Stand, Double}
	if !slices.Equal(legal, want) {
		t.Errorf("LegalActions() = %v, want %v", legal, want)
	}
}

func TestMixedTenPairCanSplit(t *testing.T) {
	t.Parallel()

	// A king and a queen have equal rank value, so they split.
	r := dealRound(t, VegasRules(), 10, "Ks 6h Qd 5c")

	legal, err := r.LegalActions()
	if err != nil {
		t.Fatalf("LegalActions() failed: %v", err)
	}
	if !containsAction(legal, Split) {
		t.Errorf("mixed ten-value pair should offer a split, got %v", legal)
	}
}

func TestNoDoubleOnThreeCards(t *testing.T) {
	t.Parallel()

	r := dealRound(t, VegasRules(), 10, "2s 6h 3d 5c 4s")
	r = mustAdvance(t, r, Hit)

	legal, err := r.LegalActions()
	if err != nil {
		t.Fatalf("LegalActions() failed: %v", err)
	}
	if containsAction(legal, Double) {
		t.Errorf("a three-card hand must not double, got %v", legal)
	}
}

func TestNoSplitAtMaxHands(t *testing.T) {
	t.Parallel()

	rules := VegasRules()
	rules.MaxHandsAfterSplit = 2

	r := dealRound(t, rules, 10, "8s 6h 8d 5c 8h")
	r = mustAdvance(t, r, Split)
	r = mustAdvance(t, r, NoAction) // first hand draws a third eight

	legal, err := r.LegalActions()
	if err != nil {
		t.Fatalf("LegalActions() failed: %v", err)
	}
	if containsAction(legal, Split) {
		t.Errorf("at the hand limit a pair must not resplit, got %v", legal)
	}
}

func TestSplitAcesDisabled(t *testing.T) {
	t.Parallel()

	rules := VegasRules()
	rules.SplitAces = 0

	r := dealRound(t, rules, 10, "As 6h Ad 5c")

	legal, err := r.LegalActions()
	if err != nil {
		t.Fatalf("LegalActions() failed: %v", err)
	}
	if containsAction(legal, Split) {
		t.Errorf("aces must not split when the rules forbid it, got %v", legal)
	}
}

func TestDoubleAfterSplitAppliesBeyondFirstHand(t *testing.T) {
	t.Parallel()

	rules := VegasRules()
	rules.DoubleAfterSplit = false

	r := dealRound(t, rules, 10, "8s 6h 8d 5c 3s 2s")
	r = mustAdvance(t, r, Split)
	r = mustAdvance(t, r, NoAction)

	// Hand zero may still double without DoubleAfterSplit.
	legal, err := r.LegalActions()
	if err != nil {
		t.Fatalf("LegalActions() failed: %v", err)
	}
	if !containsAction(legal, Double) {
		t.Errorf("hand 0 should double without DoubleAfterSplit, got %v", legal)
	}

	r = mustAdvance(t, r, Stand)
	r = mustAdvance(t, r, NoAction)

	legal, err = r.LegalActions()
	if err != nil {
		t.Fatalf("LegalActions() failed: %v", err)
	}
	if containsAction(legal, Double) {
		t.Errorf("hand 1 must not double without DoubleAfterSplit, got %v", legal)
	}
}

func TestDoubleTotalRestrictions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		mode      DoubleMode
		cards     string
		canDouble bool
	}{
		{"hard 11 under 10-11", DoubleHard10To11, "5s 6h 6d 5c", true},
		{"hard 9 under 10-11", DoubleHard10To11, "5s 6h 4d 5c", false},
		{"hard 9 under 9-11", DoubleHard9To11, "5s 6h 4d 5c", true},
		{"hard 8 under 9-11", DoubleHard9To11, "5s 6h 3d 5c", false},
		{"soft 19 under 9-11", DoubleHard9To11, "As 6h 8d 5c", false},
		{"soft 19 under any", DoubleAny, "As 6h 8d 5c", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := VegasRules()
			rules.DoubleOn = tt.mode

			r := dealRound(t, rules, 10, tt.cards)
			legal, err := r.LegalActions()
			if err != nil {
				t.Fatalf("LegalActions() failed: %v", err)
			}
			if got := containsAction(legal, Double); got != tt.canDouble {
				t.Errorf("double legality = %v, want %v (actions %v)", got, tt.canDouble, legal)
			}
		})
	}
}

func TestLegalActionsOutsidePlayerTurn(t *testing.T) {
	t.Parallel()

	shoe := deck.NewStackedShoe(deck.MustParseCards("9s 6h 7d 5c")...)
	r := NewRound(randutil.New(1), VegasRules(), 10, WithShoe(shoe))

	if _, err := r.LegalActions(); !errors.Is(err, ErrNotPlayerTurn) {
		t.Errorf("LegalActions() during dealing should fail, got %v", err)
	}

	over := dealRound(t, VegasRules(), 10, "9s Ah 7d Kc")
	if _, err := over.LegalActions(); !errors.Is(err, ErrNotPlayerTurn) {
		t.Errorf("LegalActions() after game-over should fail, got %v", err)
	}
}

func TestLegalActionsOnFinishedHand(t *testing.T) {
	t.Parallel()

	// Build an inconsistent state directly: the transition function never
	// leaves a finished hand active.
	r := &Round{
		rules:  VegasRules(),
		phase:  PlayerTurn,
		player: [][]deck.Card{deck.MustParseCards("As 4h 6c")},
		stake:  10,
		bets:   []float64{10},
	}

	if _, err := r.LegalActions(); !errors.Is(err, ErrHandFinished) {
		t.Errorf("LegalActions() on a finished hand should fail, got %v", err)
	}
}
