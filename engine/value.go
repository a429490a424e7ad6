package engine

import (
	"strconv"

	"github.com/lox/blackjack/deck"
)

// ValueKind discriminates the three shapes a hand value can take
type ValueKind int

const (
	// Hard is a plain integer total, including busts and soft totals
	// that collapsed to 21.
	Hard ValueKind = iota
	// Soft is a total where an ace counts as 11 without busting; Low and
	// High are the two valid readings.
	Soft
	// Blackjack is a two-card natural.
	Blackjack
)

func (k ValueKind) String() string {
	return [...]string{"hard", "soft", "blackjack"}[k]
}

// Value is the recomputed-on-demand value of a hand. For Hard values Low
// and High are equal; for Blackjack both are 21.
type Value struct {
	Kind ValueKind
	Low  int
	High int
}

// Best returns the value's high representative, the total the hand is
// scored at.
func (v Value) Best() int {
	return v.High
}

// IsBust reports whether the hand is bust. Only hard totals can bust.
func (v Value) IsBust() bool {
	return v.Kind == Hard && v.High > 21
}

// String renders the value for display: the plain total, "blackjack",
// "soft N", or "Ace" for a lone ace.
func (v Value) String() string {
	switch v.Kind {
	case Hard:
		return strconv.Itoa(v.High)
	case Soft:
		if v.Low == 1 && v.High == 11 {
			return "Ace"
		}
		return "soft " + strconv.Itoa(v.High)
	case Blackjack:
		return "blackjack"
	default:
		panic("engine: unreachable value kind")
	}
}

// CardValue returns a card's blackjack value: face-down cards count zero,
// 2-10 count face value, J/Q/K count ten, aces count one or, when aceHigh
// is set, eleven. aceHigh is used only to index strategy tables by the
// dealer's upcard.
func CardValue(c deck.Card, aceHigh bool) int {
	if c.FaceDown {
		return 0
	}
	switch {
	case c.Rank == deck.Ace:
		if aceHigh {
			return 11
		}
		return 1
	case c.Rank >= deck.Ten:
		return 10
	default:
		return int(c.Rank)
	}
}

// HandValue computes the value of a hand. Face-down cards are ignored. A
// two-card ace plus ten-valued hand is a natural, demoted to a plain 21
// when the hand descends from split aces and the rules do not allow a
// split-ace blackjack.
func HandValue(hand []deck.Card, acesWereSplit bool, rules Rules) Value {
	visible := hand[:0:0]
	for _, c := range hand {
		if !c.FaceDown {
			visible = append(visible, c)
		}
	}

	if len(visible) == 2 && isNatural(visible[0], visible[1], rules) {
		if acesWereSplit && !rules.SplitAceCanBeBlackjack {
			return Value{Kind: Hard, Low: 21, High: 21}
		}
		return Value{Kind: Blackjack, Low: 21, High: 21}
	}

	low := 0
	hasAce := false
	for _, c := range visible {
		low += CardValue(c, false)
		if c.IsAce() {
			hasAce = true
		}
	}

	if hasAce && low <= 11 {
		high := low + 10
		if high == 21 {
			return Value{Kind: Hard, Low: 21, High: 21}
		}
		return Value{Kind: Soft, Low: low, High: high}
	}
	return Value{Kind: Hard, Low: low, High: low}
}

// isNatural reports whether two face-up cards form an ace plus ten-valued
// pair in either order. J/Q/K always count as the ten half; a rank-ten
// card counts only when the rules admit it.
func isNatural(a, b deck.Card, rules Rules) bool {
	return (a.IsAce() && tenValued(b, rules)) || (b.IsAce() && tenValued(a, rules))
}

func tenValued(c deck.Card, rules Rules) bool {
	if c.IsFaceCard() {
		return true
	}
	return c.Rank == deck.Ten && rules.AceAndTenCountsAsBlackjack
}
