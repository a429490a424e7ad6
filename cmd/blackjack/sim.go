package main

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/simulator"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

type SimCmd struct {
	Rounds    int     `default:"100000" help:"Number of rounds to simulate"`
	Bet       float64 `default:"10" help:"Starting bet per round"`
	Seed      int64   `default:"0" help:"RNG seed (0 for time-based)"`
	Workers   int     `default:"0" help:"Worker goroutines (0 for automatic)"`
	Rules     string  `default:"vegas" help:"Ruleset name (built-in preset or a name from --rules-file)"`
	RulesFile string  `type:"existingfile" optional:"" help:"HCL rules file with custom rulesets"`
	History   string  `optional:"" help:"Append a JSONL record of every round to this file"`
}

func (c *SimCmd) Run(logger *log.Logger) error {
	rules, err := config.Resolve(c.Rules, c.RulesFile)
	if err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := simulator.Config{
		Rounds:  c.Rounds,
		Bet:     c.Bet,
		Seed:    seed,
		Workers: c.Workers,
		Rules:   rules,
		Logger:  logger,
	}

	var writer *history.Writer
	if c.History != "" {
		writer, err = history.NewWriter(history.WriterConfig{
			Path:   c.History,
			Logger: logger,
		})
		if err != nil {
			return err
		}
		cfg.Recorder = writer
	}

	sim, err := simulator.New(cfg)
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := sim.Run(context.Background())
	if writer != nil {
		if closeErr := writer.Close(); closeErr != nil {
			logger.Error("failed to close history writer", "error", closeErr)
		}
	}
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Println(bannerStyle.Render(fmt.Sprintf("=== %d rounds of %s blackjack ===", stats.Rounds, c.Rules)))
	fmt.Printf("%s %d (seed %d, %.0f rounds/sec)\n",
		labelStyle.Render("Rounds:"), stats.Rounds, seed,
		float64(stats.Rounds)/elapsed.Seconds())

	edge := stats.HouseEdge()
	edgeStyle := lossStyle
	if edge < 0 {
		edgeStyle = winStyle
	}
	fmt.Printf("%s %s\n", labelStyle.Render("House edge:"),
		edgeStyle.Render(fmt.Sprintf("%.3f%% of wager", edge*100)))

	low, high := stats.ConfidenceInterval95()
	fmt.Printf("%s %.4f per round (95%% CI [%.4f, %.4f], stddev %.3f)\n",
		labelStyle.Render("Mean net:"), stats.Mean(), low, high, stats.StdDev())
	fmt.Printf("%s %.2f wagered, %.2f net\n",
		labelStyle.Render("Totals:"), stats.Wagered, stats.Net)

	hands := stats.Wins + stats.Losses + stats.Pushes
	fmt.Printf("%s %s / %s / %d pushes across %d hands\n",
		labelStyle.Render("Outcomes:"),
		winStyle.Render(fmt.Sprintf("%d wins", stats.Wins)),
		lossStyle.Render(fmt.Sprintf("%d losses", stats.Losses)),
		stats.Pushes, hands)
	fmt.Printf("%s %d naturals (%.2f%%), %d rounds split\n",
		labelStyle.Render("Detail:"), stats.Blackjacks,
		float64(stats.Blackjacks)/float64(hands)*100, stats.Splits)

	if writer != nil {
		fmt.Printf("%s %d records written to %s", labelStyle.Render("History:"), writer.Written(), c.History)
		if dropped := writer.Dropped(); dropped > 0 {
			fmt.Printf(" (%d dropped)", dropped)
		}
		fmt.Println()
	}
	return nil
}
