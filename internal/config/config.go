// Package config loads house rulesets from HCL files and provides the
// named built-in presets.
//
// A rules file holds one or more named blocks; attributes left unset
// default to the vegas preset:
//
//	rules "home-game" {
//	  dealer_stands_on_all_17 = false
//	  blackjack_payout        = 1.2
//	}
package config

import (
	"fmt"
	"sort"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/blackjack/engine"
)

// file is the top-level HCL schema.
type file struct {
	Rules []rulesBlock `hcl:"rules,block"`
}

// rulesBlock mirrors engine.Rules with every attribute optional, so a
// file only needs to state what differs from the vegas preset.
type rulesBlock struct {
	Name string `hcl:"name,label"`

	DealerStandsOnAll17        *bool    `hcl:"dealer_stands_on_all_17,optional"`
	DealerPeeks                *bool    `hcl:"dealer_peeks,optional"`
	SplitAces                  *int     `hcl:"split_aces,optional"`
	HitOnSplitAce              *bool    `hcl:"hit_on_split_ace,optional"`
	MaxHandsAfterSplit         *int     `hcl:"max_hands_after_split,optional"`
	DoubleOn                   *string  `hcl:"double_on,optional"`
	DoubleAfterSplit           *bool    `hcl:"double_after_split,optional"`
	DoubleOnSplitAce           *bool    `hcl:"double_on_split_ace,optional"`
	BlackjackPayout            *float64 `hcl:"blackjack_payout,optional"`
	AceAndTenCountsAsBlackjack *bool    `hcl:"ace_and_ten_counts_as_blackjack,optional"`
	SplitAceCanBeBlackjack     *bool    `hcl:"split_ace_can_be_blackjack,optional"`
}

// Presets returns the built-in ruleset names in stable order.
func Presets() []string {
	return []string{"vegas", "downtown", "strict"}
}

// Preset returns a built-in ruleset by name.
func Preset(name string) (engine.Rules, error) {
	switch name {
	case "vegas":
		return engine.VegasRules(), nil
	case "downtown":
		return engine.DowntownRules(), nil
	case "strict":
		return engine.StrictRules(), nil
	default:
		return engine.Rules{}, fmt.Errorf("unknown ruleset %q (built-in rulesets: %v)", name, Presets())
	}
}

// Load parses an HCL rules file and returns the rulesets it defines by
// name, each defaulted from the vegas preset and validated.
func Load(path string) (map[string]engine.Rules, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", path, diags.Error())
	}

	var cfg file
	if diags := gohcl.DecodeBody(f.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode %s: %s", path, diags.Error())
	}
	if len(cfg.Rules) == 0 {
		return nil, fmt.Errorf("%s defines no rules blocks", path)
	}

	out := make(map[string]engine.Rules, len(cfg.Rules))
	for _, block := range cfg.Rules {
		if block.Name == "" {
			return nil, fmt.Errorf("%s: rules block requires a name label", path)
		}
		if _, exists := out[block.Name]; exists {
			return nil, fmt.Errorf("%s: duplicate rules block %q", path, block.Name)
		}
		rules, err := block.resolve()
		if err != nil {
			return nil, fmt.Errorf("%s: rules %q: %w", path, block.Name, err)
		}
		out[block.Name] = rules
	}
	return out, nil
}

// Resolve returns the ruleset for name, trying the built-in presets
// first and then the optional rules file.
func Resolve(name, path string) (engine.Rules, error) {
	if rules, err := Preset(name); err == nil {
		return rules, nil
	}
	if path == "" {
		return engine.Rules{}, fmt.Errorf("unknown ruleset %q (built-in rulesets: %v; pass a rules file for custom rulesets)", name, Presets())
	}
	loaded, err := Load(path)
	if err != nil {
		return engine.Rules{}, err
	}
	rules, ok := loaded[name]
	if !ok {
		names := make([]string, 0, len(loaded))
		for n := range loaded {
			names = append(names, n)
		}
		sort.Strings(names)
		return engine.Rules{}, fmt.Errorf("ruleset %q not found in %s (defines %v)", name, path, names)
	}
	return rules, nil
}

// resolve overlays the block onto the vegas preset and validates the
// result.
func (b rulesBlock) resolve() (engine.Rules, error) {
	rules := engine.VegasRules()

	setBool(&rules.DealerStandsOnAll17, b.DealerStandsOnAll17)
	setBool(&rules.DealerPeeks, b.DealerPeeks)
	setInt(&rules.SplitAces, b.SplitAces)
	setBool(&rules.HitOnSplitAce, b.HitOnSplitAce)
	setInt(&rules.MaxHandsAfterSplit, b.MaxHandsAfterSplit)
	setBool(&rules.DoubleAfterSplit, b.DoubleAfterSplit)
	setBool(&rules.DoubleOnSplitAce, b.DoubleOnSplitAce)
	setBool(&rules.AceAndTenCountsAsBlackjack, b.AceAndTenCountsAsBlackjack)
	setBool(&rules.SplitAceCanBeBlackjack, b.SplitAceCanBeBlackjack)
	if b.BlackjackPayout != nil {
		rules.BlackjackPayout = *b.BlackjackPayout
	}
	if b.DoubleOn != nil {
		mode, err := engine.ParseDoubleMode(*b.DoubleOn)
		if err != nil {
			return engine.Rules{}, fmt.Errorf("double_on: %w", err)
		}
		rules.DoubleOn = mode
	}

	if err := rules.Validate(); err != nil {
		return engine.Rules{}, err
	}
	return rules, nil
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}

func setInt(dst *int, src *int) {
	if src != nil {
		*dst = *src
	}
}
