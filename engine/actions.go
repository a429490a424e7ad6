package engine

// Phase represents where a round is in its lifecycle
type Phase int

const (
	Dealing Phase = iota
	PlayerTurn
	DealerTurn
	GameOver
)

func (p Phase) String() string {
	return [...]string{"dealing", "player-turn", "dealer-turn", "game-over"}[p]
}

// Action represents a player decision
type Action int

const (
	NoAction Action = iota
	Hit
	Stand
	Double
	Split
)

func (a Action) String() string {
	return [...]string{"none", "hit", "stand", "double", "split"}[a]
}
