package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/deck"
	"github.com/lox/blackjack/engine"
	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/strategy"
)

type DealCmd struct {
	Rounds    int     `default:"1" help:"Number of rounds to play"`
	Bet       float64 `default:"10" help:"Starting bet per round"`
	Seed      int64   `default:"0" help:"RNG seed (0 for time-based)"`
	Rules     string  `default:"vegas" help:"Ruleset name (built-in preset or a name from --rules-file)"`
	RulesFile string  `type:"existingfile" optional:"" help:"HCL rules file with custom rulesets"`
}

func (c *DealCmd) Run(logger *log.Logger) error {
	rules, err := config.Resolve(c.Rules, c.RulesFile)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("dealing rounds", "rounds", c.Rounds, "seed", seed, "rules", c.Rules)

	for i := range c.Rounds {
		fmt.Println(bannerStyle.Render(fmt.Sprintf("=== round %d ===", i+1)))
		if err := c.playRound(randutil.Derive(seed, uint64(i)), rules); err != nil {
			return fmt.Errorf("round %d: %w", i+1, err)
		}
	}
	return nil
}

// playRound plays one round with the advisor, narrating every state.
func (c *DealCmd) playRound(seed int64, rules engine.Rules) error {
	r := engine.NewRound(randutil.New(seed), rules, c.Bet)
	for r.Phase() != engine.GameOver {
		action := engine.NoAction
		if r.Phase() == engine.PlayerTurn {
			suggested, err := strategy.Suggest(r)
			if err != nil {
				return err
			}
			action = suggested
			printState(r)
			fmt.Printf("  -> %s\n", action)
		}
		next, err := r.Advance(action)
		if err != nil {
			return err
		}
		r = next
	}
	printState(r)

	outcomes, err := r.Outcomes()
	if err != nil {
		return err
	}
	for i, o := range outcomes {
		style := lossStyle
		if o.Result == engine.Win {
			style = winStyle
		}
		fmt.Printf("hand %d: %s for %.2f\n", i+1, style.Render(o.String()), r.Bets()[i])
	}
	return nil
}

func printState(r *engine.Round) {
	fmt.Printf("dealer: %-14s (%s)\n", formatHand(r.DealerHand()), r.DealerValue())
	for i, h := range r.PlayerHands() {
		marker := " "
		if i == r.ActiveHandIndex() && r.Phase() == engine.PlayerTurn {
			marker = "*"
		}
		fmt.Printf("hand %d%s %-14s (%s)\n", i+1, marker, formatHand(h), r.PlayerValue(i))
	}
}

func formatHand(hand []deck.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
