// Package history records completed rounds as JSON lines, one object
// per round, with buffered writes that never block the game loop.
package history

import (
	"time"

	"github.com/google/uuid"

	"github.com/lox/blackjack/engine"
)

// Record is one completed round, flattened for the JSONL log. Cards are
// stored in their compact string form ("As", "Td") so records stay
// greppable and replayable.
type Record struct {
	ID       string     `json:"id"`
	Time     time.Time  `json:"time"`
	Seed     int64      `json:"seed"`
	Stake    float64    `json:"stake"`
	Upcard   string     `json:"upcard"`
	Dealer   []string   `json:"dealer"`
	Hands    [][]string `json:"hands"`
	Bets     []float64  `json:"bets"`
	Actions  []string   `json:"actions"`
	Outcomes []string   `json:"outcomes"`
	Net      float64    `json:"net"`
}

// NewRecord builds a record from a finished round. The round must be at
// game-over with outcomes resolvable; actions are the player decisions
// in the order they were taken.
func NewRecord(r *engine.Round, actions []engine.Action, net float64, seed int64, now time.Time) (Record, error) {
	outcomes, err := r.Outcomes()
	if err != nil {
		return Record{}, err
	}

	rec := Record{
		ID:    uuid.NewString(),
		Time:  now,
		Seed:  seed,
		Stake: r.Stake(),
		Bets:  r.Bets(),
		Net:   net,
	}
	if up, ok := r.Upcard(); ok {
		rec.Upcard = up.Code()
	}
	for _, c := range r.DealerHand() {
		rec.Dealer = append(rec.Dealer, c.Code())
	}
	for _, h := range r.PlayerHands() {
		hand := make([]string, len(h))
		for i, c := range h {
			hand[i] = c.Code()
		}
		rec.Hands = append(rec.Hands, hand)
	}
	for _, a := range actions {
		rec.Actions = append(rec.Actions, a.String())
	}
	for _, o := range outcomes {
		rec.Outcomes = append(rec.Outcomes, o.String())
	}
	return rec, nil
}
