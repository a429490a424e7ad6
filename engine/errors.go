package engine

import "errors"

// These errors signal driver bugs: the caller has used the engine outside
// its contract. They are not recoverable mid-round.
var (
	// ErrRoundOver is returned when advancing a round that has finished.
	ErrRoundOver = errors.New("round is over")

	// ErrRoundNotOver is returned when resolving outcomes before the
	// round has finished.
	ErrRoundNotOver = errors.New("round is not over")

	// ErrNotPlayerTurn is returned when consulting the oracle or the
	// advisor outside the player-turn phase.
	ErrNotPlayerTurn = errors.New("not the player's turn")

	// ErrHandFinished is returned when consulting the oracle on a hand
	// that is already finished.
	ErrHandFinished = errors.New("hand already finished")

	// ErrIllegalAction is returned when the supplied action is not in
	// the legal-action list; the wrapped message names the alternatives.
	ErrIllegalAction = errors.New("illegal action")
)
