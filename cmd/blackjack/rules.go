package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/engine"
	"github.com/lox/blackjack/internal/config"
)

type RulesCmd struct {
	Rules     string `default:"" help:"Ruleset to print (default: all)"`
	RulesFile string `type:"existingfile" optional:"" help:"HCL rules file to validate and print"`
}

func (c *RulesCmd) Run(logger *log.Logger) error {
	if c.Rules != "" {
		rules, err := config.Resolve(c.Rules, c.RulesFile)
		if err != nil {
			return err
		}
		printRules(c.Rules, rules)
		return nil
	}

	if c.RulesFile != "" {
		loaded, err := config.Load(c.RulesFile)
		if err != nil {
			return err
		}
		logger.Debug("rules file valid", "file", c.RulesFile, "rulesets", len(loaded))
		names := make([]string, 0, len(loaded))
		for name := range loaded {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			printRules(name, loaded[name])
		}
		return nil
	}

	for _, name := range config.Presets() {
		rules, err := config.Preset(name)
		if err != nil {
			return err
		}
		printRules(name, rules)
	}
	return nil
}

func printRules(name string, r engine.Rules) {
	fmt.Println(bannerStyle.Render(fmt.Sprintf("=== %s ===", name)))
	rows := []struct {
		label string
		value any
	}{
		{"dealer stands on all 17s", r.DealerStandsOnAll17},
		{"dealer peeks", r.DealerPeeks},
		{"ace splits allowed", r.SplitAces},
		{"hit on split ace", r.HitOnSplitAce},
		{"max hands after split", r.MaxHandsAfterSplit},
		{"double on", r.DoubleOn},
		{"double after split", r.DoubleAfterSplit},
		{"double on split ace", r.DoubleOnSplitAce},
		{"blackjack payout", r.BlackjackPayout},
		{"ace and ten counts as blackjack", r.AceAndTenCountsAsBlackjack},
		{"split ace can be blackjack", r.SplitAceCanBeBlackjack},
	}
	for _, row := range rows {
		fmt.Printf("  %-33s %v\n", labelStyle.Render(row.label), row.value)
	}
}
