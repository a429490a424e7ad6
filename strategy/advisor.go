// Package strategy recommends actions for blackjack hands from static
// basic strategy charts: one table each for hard totals, soft totals,
// and pairs, indexed by the dealer's upcard. Chart cells carry a
// fallback so that a recommendation is always legal for the hand it was
// asked about.
package strategy

import (
	"slices"

	"github.com/lox/blackjack/engine"
)

// Suggest returns the chart action for the round's actionable hand. The
// pair chart applies when the hand can currently split; otherwise the
// soft or hard chart applies by the hand's value. The round must be in
// the player-turn phase.
func Suggest(r *engine.Round) (engine.Action, error) {
	legal, err := r.LegalActions()
	if err != nil {
		return engine.NoAction, err
	}

	// A successful oracle call means the opening deal has happened, so
	// the upcard is present.
	upcard, _ := r.Upcard()
	up := engine.CardValue(upcard, true)

	var c cell
	value := r.PlayerValue(r.ActiveHandIndex())
	switch {
	case slices.Contains(legal, engine.Split):
		pair := r.ActiveHand()
		c = pairCell(engine.CardValue(pair[0], true), up)
	case value.Kind == engine.Soft:
		c = softCell(value.High, up)
	default:
		c = hardCell(value.Best(), up)
	}

	return resolve(c, legal), nil
}

// resolve turns a chart cell into an action the oracle allows, taking
// the cell's fallback when the primary is unavailable and standing as a
// last resort. Stand is legal on every actionable hand.
func resolve(c cell, legal []engine.Action) engine.Action {
	var primary, fallback engine.Action
	switch c {
	case hit:
		primary, fallback = engine.Hit, engine.Stand
	case stand:
		return engine.Stand
	case doubleHit:
		primary, fallback = engine.Double, engine.Hit
	case doubleStand:
		primary, fallback = engine.Double, engine.Stand
	case split:
		primary, fallback = engine.Split, engine.Hit
	default:
		panic("strategy: unreachable chart cell")
	}
	if slices.Contains(legal, primary) {
		return primary
	}
	if slices.Contains(legal, fallback) {
		return fallback
	}
	return engine.Stand
}
