package engine

import "fmt"

// DoubleMode restricts which two-card totals may be doubled
type DoubleMode int

const (
	DoubleAny DoubleMode = iota
	DoubleHard9To11
	DoubleHard10To11
)

func (m DoubleMode) String() string {
	return [...]string{"any", "hard-9-11", "hard-10-11"}[m]
}

// ParseDoubleMode parses the string form used by config files and flags.
func ParseDoubleMode(s string) (DoubleMode, error) {
	switch s {
	case "any":
		return DoubleAny, nil
	case "hard-9-11":
		return DoubleHard9To11, nil
	case "hard-10-11":
		return DoubleHard10To11, nil
	default:
		return 0, fmt.Errorf("invalid double mode %q (want any, hard-9-11 or hard-10-11)", s)
	}
}

// Rules is the fixed house configuration for a round. It is set once at
// round creation and never mutated during play; independent rounds may use
// independent rulesets.
type Rules struct {
	// DealerStandsOnAll17 makes the dealer stand on soft 17 as well as
	// hard 17 (S17). When false the dealer hits soft 17 (H17).
	DealerStandsOnAll17 bool

	// DealerPeeks checks the hole card for a natural immediately after the
	// initial deal, ending the round before the player acts.
	DealerPeeks bool

	// SplitAces is how many times aces may be split in one round, 0-3.
	// 0 means aces can never be split.
	SplitAces int

	// HitOnSplitAce allows further hits on a hand made by splitting aces.
	// When false such hands receive exactly one supplementary card.
	HitOnSplitAce bool

	// MaxHandsAfterSplit caps the total number of player hands, 1-4.
	MaxHandsAfterSplit int

	// DoubleOn restricts which two-card totals may double.
	DoubleOn DoubleMode

	// DoubleAfterSplit allows doubling on hands other than the first
	// after a split.
	DoubleAfterSplit bool

	// DoubleOnSplitAce allows doubling when the round's hands descend
	// from split aces.
	DoubleOnSplitAce bool

	// BlackjackPayout is the winnings multiplier for a natural, e.g. 1.5
	// for 3:2 and 1.2 for 6:5.
	BlackjackPayout float64

	// AceAndTenCountsAsBlackjack admits a rank-ten card (not just J/Q/K)
	// as the ten half of a natural.
	AceAndTenCountsAsBlackjack bool

	// SplitAceCanBeBlackjack lets an ace-split hand that draws a
	// ten-valued card count as a natural instead of a plain 21.
	SplitAceCanBeBlackjack bool
}

// VegasRules returns the standard strip game: dealer stands on all 17s and
// peeks for blackjack, up to four hands from up to three ace splits,
// double on anything including after splits, naturals pay 3:2.
func VegasRules() Rules {
	return Rules{
		DealerStandsOnAll17:        true,
		DealerPeeks:                true,
		SplitAces:                  3,
		HitOnSplitAce:              false,
		MaxHandsAfterSplit:         4,
		DoubleOn:                   DoubleAny,
		DoubleAfterSplit:           true,
		DoubleOnSplitAce:           false,
		BlackjackPayout:            1.5,
		AceAndTenCountsAsBlackjack: true,
		SplitAceCanBeBlackjack:     false,
	}
}

// DowntownRules is VegasRules with the dealer hitting soft 17.
func DowntownRules() Rules {
	r := VegasRules()
	r.DealerStandsOnAll17 = false
	return r
}

// StrictRules returns a tight game: one split only, no double after split,
// doubling restricted to hard 10-11, naturals pay 6:5.
func StrictRules() Rules {
	return Rules{
		DealerStandsOnAll17:        true,
		DealerPeeks:                true,
		SplitAces:                  1,
		HitOnSplitAce:              false,
		MaxHandsAfterSplit:         2,
		DoubleOn:                   DoubleHard10To11,
		DoubleAfterSplit:           false,
		DoubleOnSplitAce:           false,
		BlackjackPayout:            1.2,
		AceAndTenCountsAsBlackjack: true,
		SplitAceCanBeBlackjack:     false,
	}
}

// Validate checks that every field is within its allowed range.
func (r Rules) Validate() error {
	if r.SplitAces < 0 || r.SplitAces > 3 {
		return fmt.Errorf("split aces must be between 0 and 3, got %d", r.SplitAces)
	}
	if r.MaxHandsAfterSplit < 1 || r.MaxHandsAfterSplit > 4 {
		return fmt.Errorf("max hands after split must be between 1 and 4, got %d", r.MaxHandsAfterSplit)
	}
	switch r.DoubleOn {
	case DoubleAny, DoubleHard9To11, DoubleHard10To11:
	default:
		return fmt.Errorf("invalid double mode %d", r.DoubleOn)
	}
	if r.BlackjackPayout <= 0 {
		return fmt.Errorf("blackjack payout must be positive, got %g", r.BlackjackPayout)
	}
	return nil
}
