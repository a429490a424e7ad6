package engine

// LegalActions returns the actions the player may take on the active
// hand, in Hit, Stand, Double, Split order. It errors outside the
// player-turn phase and on a hand that has already finished; both
// indicate a driver bug.
func (r *Round) LegalActions() ([]Action, error) {
	if r.phase != PlayerTurn {
		return nil, ErrNotPlayerTurn
	}
	if r.handFinished(r.active) {
		return nil, ErrHandFinished
	}

	h := r.player[r.active]
	actions := []Action{}

	// Split-ace hands get exactly one supplementary card unless the
	// rules allow hitting them.
	if r.aceSplits == 0 || r.rules.HitOnSplitAce {
		actions = append(actions, Hit)
	}

	actions = append(actions, Stand)

	if len(h) == 2 && r.doubleEligible() {
		actions = append(actions, Double)
	}

	if len(h) == 2 && CardValue(h[0], false) == CardValue(h[1], false) &&
		len(r.player) < r.rules.MaxHandsAfterSplit {
		if !h[0].IsAce() || r.aceSplits < r.rules.SplitAces {
			actions = append(actions, Split)
		}
	}

	return actions, nil
}

// doubleEligible checks the active two-card hand against the doubling
// rules: total restriction, doubling after a split, and doubling on split
// aces.
func (r *Round) doubleEligible() bool {
	if r.active != 0 && !r.rules.DoubleAfterSplit {
		return false
	}
	if r.aceSplits > 0 && !r.rules.DoubleOnSplitAce {
		return false
	}

	switch r.rules.DoubleOn {
	case DoubleAny:
		return true
	case DoubleHard9To11:
		v := r.playerValue(r.active)
		return v.Kind == Hard && v.High >= 9 && v.High <= 11
	case DoubleHard10To11:
		v := r.playerValue(r.active)
		return v.Kind == Hard && v.High >= 10 && v.High <= 11
	default:
		panic("engine: unreachable double mode")
	}
}
