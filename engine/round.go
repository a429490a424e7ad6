package engine

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/lox/blackjack/deck"
)

const defaultDecks = 8

// RoundOption configures a Round during creation.
type RoundOption func(*roundConfig)

type roundConfig struct {
	decks int
	shoe  *deck.Shoe
}

// WithDecks sets the number of decks shuffled into the shoe. Default is 8.
func WithDecks(n int) RoundOption {
	return func(c *roundConfig) {
		c.decks = n
	}
}

// WithShoe supplies a pre-built shoe, overriding shuffling entirely. The
// round draws from its own clone, so the caller's shoe is not consumed.
// Combined with deck.NewStackedShoe this gives tests exact control over
// every deal.
func WithShoe(s *deck.Shoe) RoundOption {
	return func(c *roundConfig) {
		c.shoe = s
	}
}

// Round is one round of blackjack: the shoe, the player's hands and bets,
// the dealer's hand, and the phase. Rounds are advanced exclusively
// through Advance, which returns a new value and never mutates its
// receiver, so a caller holding an old *Round sees a frozen snapshot.
type Round struct {
	rules     Rules
	shoe      *deck.Shoe
	player    [][]deck.Card
	dealer    []deck.Card
	active    int
	phase     Phase
	stake     float64
	bets      []float64
	aceSplits int
}

// NewRound creates a round in the dealing phase with a freshly shuffled
// shoe, one empty player hand and the given starting bet. The RNG is
// required to make randomness explicit and testing deterministic; it
// panics when nil, as do a non-positive bet and invalid rules, since all
// three are construction bugs rather than game conditions.
func NewRound(rng *rand.Rand, rules Rules, bet float64, opts ...RoundOption) *Round {
	if rng == nil {
		panic("rng is required for round creation")
	}
	if bet <= 0 {
		panic("starting bet must be positive")
	}
	if err := rules.Validate(); err != nil {
		panic(fmt.Sprintf("invalid rules: %v", err))
	}

	cfg := &roundConfig{decks: defaultDecks}
	for _, opt := range opts {
		opt(cfg)
	}

	var shoe *deck.Shoe
	if cfg.shoe != nil {
		shoe = cfg.shoe.Clone()
	} else {
		shoe = deck.NewShoe(rng, cfg.decks)
	}

	return &Round{
		rules:  rules,
		shoe:   shoe,
		player: [][]deck.Card{{}},
		phase:  Dealing,
		stake:  bet,
		bets:   []float64{bet},
	}
}

// Advance applies one transition and returns the resulting state. The
// action is validated against LegalActions and applied when the phase is
// player-turn; in every other phase it is ignored and the engine performs
// its own step (dealing a card, revealing the hole card, drawing for the
// dealer). Advancing a finished round returns ErrRoundOver.
func (r *Round) Advance(action Action) (*Round, error) {
	switch r.phase {
	case Dealing:
		return r.deal(), nil
	case PlayerTurn:
		return r.apply(action)
	case DealerTurn:
		return r.dealerStep(), nil
	case GameOver:
		return nil, fmt.Errorf("cannot advance: %w", ErrRoundOver)
	default:
		panic(fmt.Sprintf("engine: unreachable phase %d", r.phase))
	}
}

// deal performs one dealing step: the full opening deal for a fresh
// round, or a single card to the active hand when a split left it
// unopened.
func (r *Round) deal() *Round {
	c := r.clone()
	if len(c.player) == 1 {
		return c.openingDeal()
	}

	c.player[c.active] = append(c.player[c.active], c.shoe.Draw())
	if c.handFinished(c.active) {
		c.advanceTurn()
	} else {
		c.phase = PlayerTurn
	}
	return c
}

// openingDeal deals player, dealer, player, dealer with the second dealer
// card face down, then applies the peek rule and routes past the player's
// turn when either side already holds 21.
func (c *Round) openingDeal() *Round {
	c.player[0] = append(c.player[0], c.shoe.Draw())
	c.dealer = append(c.dealer, c.shoe.Draw())
	c.player[0] = append(c.player[0], c.shoe.Draw())
	c.dealer = append(c.dealer, c.shoe.Draw().Hidden())

	if c.rules.DealerPeeks {
		c.dealer[1] = c.dealer[1].Revealed()
		if c.dealerValue().Kind == Blackjack {
			c.phase = GameOver
			return c
		}
		c.dealer[1] = c.dealer[1].Hidden()
	}

	if v := c.playerValue(0); v.Kind == Blackjack || v.Best() == 21 {
		c.phase = DealerTurn
		return c
	}
	c.phase = PlayerTurn
	return c
}

// apply validates and applies a player action.
func (r *Round) apply(action Action) (*Round, error) {
	legal, err := r.LegalActions()
	if err != nil {
		return nil, err
	}
	if !slices.Contains(legal, action) {
		return nil, fmt.Errorf("%w %s: legal actions are %v", ErrIllegalAction, action, legal)
	}

	c := r.clone()
	switch action {
	case Hit:
		c.player[c.active] = append(c.player[c.active], c.shoe.Draw())
		if c.handFinished(c.active) {
			c.advanceTurn()
		}
	case Stand:
		c.advanceTurn()
	case Double:
		c.player[c.active] = append(c.player[c.active], c.shoe.Draw())
		c.bets[c.active] += c.stake
		c.advanceTurn()
	case Split:
		h := c.player[c.active]
		if h[0].IsAce() {
			c.aceSplits++
		}
		c.player[c.active] = []deck.Card{h[0]}
		c.player = slices.Insert(c.player, c.active+1, []deck.Card{h[1]})
		c.bets = append(c.bets, c.stake)
		c.phase = Dealing
	default:
		panic(fmt.Sprintf("engine: unreachable action %d", action))
	}
	return c, nil
}

// dealerStep performs one step of the dealer's turn: reveal the hole card
// if it is still face down, otherwise draw. The turn ends as soon as
// every surviving player hand is a natural or the dealer must stand.
func (r *Round) dealerStep() *Round {
	c := r.clone()
	if i := slices.IndexFunc(c.dealer, func(card deck.Card) bool { return card.FaceDown }); i >= 0 {
		c.dealer[i] = c.dealer[i].Revealed()
	} else {
		c.dealer = append(c.dealer, c.shoe.Draw())
	}

	if c.allSurvivingNatural() {
		c.phase = GameOver
		return c
	}
	if c.dealerStands() {
		c.phase = GameOver
	}
	return c
}

// advanceTurn routes control once the active hand is done: the next
// unopened split hand gets dealt, otherwise play passes to the dealer, or
// straight to game-over when every player hand busted.
func (c *Round) advanceTurn() {
	for i := c.active + 1; i < len(c.player); i++ {
		if len(c.player[i]) == 1 {
			c.active = i
			c.phase = Dealing
			return
		}
	}
	if c.allBust() {
		c.phase = GameOver
		return
	}
	c.phase = DealerTurn
}

// handFinished reports whether hand i can take no further part in play:
// bust, a plain or collapsed 21, a natural, or a pair of split aces that
// can be neither hit nor resplit.
func (c *Round) handFinished(i int) bool {
	v := c.playerValue(i)
	if v.IsBust() || v.Kind == Blackjack || v.Best() == 21 {
		return true
	}
	h := c.player[i]
	if c.aceSplits > 0 && !c.rules.HitOnSplitAce &&
		len(h) == 2 && h[0].IsAce() && h[1].IsAce() && !c.canResplitAces() {
		return true
	}
	return false
}

func (c *Round) canResplitAces() bool {
	return len(c.player) < c.rules.MaxHandsAfterSplit && c.aceSplits < c.rules.SplitAces
}

// dealerStands reports the stand condition: a natural, hard 17 or more,
// soft 18 or more, or soft 17 when the rules stand on all 17s.
func (c *Round) dealerStands() bool {
	v := c.dealerValue()
	switch v.Kind {
	case Blackjack:
		return true
	case Hard:
		return v.High >= 17
	case Soft:
		if v.High == 17 {
			return c.rules.DealerStandsOnAll17
		}
		return v.High >= 18
	default:
		panic("engine: unreachable value kind")
	}
}

// allSurvivingNatural reports whether every non-bust player hand is a
// natural, in which case further dealer cards cannot change any outcome.
func (c *Round) allSurvivingNatural() bool {
	for i := range c.player {
		v := c.playerValue(i)
		if v.IsBust() {
			continue
		}
		if v.Kind != Blackjack {
			return false
		}
	}
	return true
}

func (c *Round) allBust() bool {
	for i := range c.player {
		if !c.playerValue(i).IsBust() {
			return false
		}
	}
	return true
}

func (r *Round) clone() *Round {
	c := *r
	c.shoe = r.shoe.Clone()
	c.player = make([][]deck.Card, len(r.player))
	for i, h := range r.player {
		c.player[i] = slices.Clone(h)
	}
	c.dealer = slices.Clone(r.dealer)
	c.bets = slices.Clone(r.bets)
	return &c
}

func (r *Round) playerValue(i int) Value {
	return HandValue(r.player[i], r.aceSplits > 0, r.rules)
}

func (r *Round) dealerValue() Value {
	return HandValue(r.dealer, false, r.rules)
}

// Phase returns the round's current phase.
func (r *Round) Phase() Phase {
	return r.phase
}

// Rules returns the house rules the round was created with.
func (r *Round) Rules() Rules {
	return r.rules
}

// Stake returns the starting bet.
func (r *Round) Stake() float64 {
	return r.stake
}

// Bets returns the per-hand bet vector, index-aligned with PlayerHands.
func (r *Round) Bets() []float64 {
	return slices.Clone(r.bets)
}

// PlayerHands returns copies of the player's hands in play order.
func (r *Round) PlayerHands() [][]deck.Card {
	hands := make([][]deck.Card, len(r.player))
	for i, h := range r.player {
		hands[i] = slices.Clone(h)
	}
	return hands
}

// ActiveHandIndex returns the index of the hand currently being played.
func (r *Round) ActiveHandIndex() int {
	return r.active
}

// ActiveHand returns a copy of the hand currently being played.
func (r *Round) ActiveHand() []deck.Card {
	return slices.Clone(r.player[r.active])
}

// DealerHand returns a copy of the dealer's hand. The hole card stays
// face down until the dealer's turn reveals it.
func (r *Round) DealerHand() []deck.Card {
	return slices.Clone(r.dealer)
}

// Upcard returns the dealer's always-visible first card. ok is false
// before the opening deal.
func (r *Round) Upcard() (deck.Card, bool) {
	if len(r.dealer) == 0 {
		return deck.Card{}, false
	}
	return r.dealer[0], true
}

// PlayerValue returns the value of player hand i under the round's rules,
// accounting for ace splits.
func (r *Round) PlayerValue(i int) Value {
	return r.playerValue(i)
}

// DealerValue returns the value of the dealer's visible cards.
func (r *Round) DealerValue() Value {
	return r.dealerValue()
}

// AcesSplit reports whether the round's hands descend from split aces.
func (r *Round) AcesSplit() bool {
	return r.aceSplits > 0
}
