// Package engine implements a single round of casino blackjack as a pure
// state machine.
//
// The main type is Round, which carries the shoe, the player's hands and
// bets, the dealer's hand and the phase. A round moves through
// dealing -> player-turn -> dealer-turn -> game-over, re-entering dealing
// after a split so each new hand receives its second card. Advance never
// mutates its receiver; every transition returns a new *Round and callers
// must treat it as the new source of truth.
//
// # Basic Usage
//
// Play a round to completion:
//
//	r := engine.NewRound(rng, engine.VegasRules(), 10)
//	for r.Phase() != engine.GameOver {
//	    action := engine.NoAction
//	    if r.Phase() == engine.PlayerTurn {
//	        action = chooseAction(r) // e.g. strategy.Suggest
//	    }
//	    r, err = r.Advance(action)
//	    // handle err
//	}
//	outcomes, err := r.Outcomes()
//
// # Deterministic Testing
//
// The RNG is always injected. For exact deals, stack the shoe:
//
//	shoe := deck.NewStackedShoe(deck.MustParseCards("As Kd 5h 6c")...)
//	r := engine.NewRound(randutil.New(42), rules, 10, engine.WithShoe(shoe))
//
// During player-turn, LegalActions reports what the active hand may do and
// Advance rejects anything else. House behavior (dealer standing rules,
// peeking, split and double eligibility, payout) comes from the Rules
// value the round was created with.
package engine
