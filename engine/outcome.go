package engine

// Result classifies a player hand against the dealer
type Result int

const (
	Win Result = iota
	Loss
	Push
)

func (r Result) String() string {
	return [...]string{"win", "loss", "push"}[r]
}

// Reason explains a win or loss; pushes carry no reason
type Reason int

const (
	ReasonNone Reason = iota
	ReasonBlackjack
	ReasonPlayerBust
	ReasonDealerBust
	ReasonHigherHand
)

func (r Reason) String() string {
	return [...]string{"", "blackjack", "player-bust", "dealer-bust", "higher-hand"}[r]
}

// Outcome is the resolution of one player hand.
type Outcome struct {
	Result Result
	Reason Reason
}

func (o Outcome) String() string {
	if o.Reason == ReasonNone {
		return o.Result.String()
	}
	return o.Result.String() + " (" + o.Reason.String() + ")"
}

// Outcomes resolves every player hand against the dealer's hand, one
// outcome per hand, index-aligned with Bets. It errors unless the round
// has reached game-over, and is idempotent on a terminal state.
func (r *Round) Outcomes() ([]Outcome, error) {
	if r.phase != GameOver {
		return nil, ErrRoundNotOver
	}

	dv := r.dealerValue()
	out := make([]Outcome, len(r.player))
	for i := range r.player {
		out[i] = resolve(r.playerValue(i), dv)
	}
	return out, nil
}

// resolve compares one player value to the dealer's. Naturals beat every
// non-natural hand, including a three-card 21.
func resolve(pv, dv Value) Outcome {
	playerNatural := pv.Kind == Blackjack
	dealerNatural := dv.Kind == Blackjack
	switch {
	case playerNatural && dealerNatural:
		return Outcome{Result: Push, Reason: ReasonNone}
	case playerNatural:
		return Outcome{Result: Win, Reason: ReasonBlackjack}
	case dealerNatural:
		return Outcome{Result: Loss, Reason: ReasonBlackjack}
	}

	player, dealer := pv.Best(), dv.Best()
	switch {
	case player > 21:
		return Outcome{Result: Loss, Reason: ReasonPlayerBust}
	case dealer > 21:
		return Outcome{Result: Win, Reason: ReasonDealerBust}
	case player > dealer:
		return Outcome{Result: Win, Reason: ReasonHigherHand}
	case player < dealer:
		return Outcome{Result: Loss, Reason: ReasonHigherHand}
	default:
		return Outcome{Result: Push, Reason: ReasonNone}
	}
}
