// Package simulator plays blackjack rounds en masse, driven entirely by
// the basic strategy advisor, and aggregates the settled results.
//
// Rounds are distributed across workers but each round's RNG seed is
// derived from (run seed, round index), so a simulation's results depend
// only on its configuration, never on scheduling.
package simulator

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lox/blackjack/engine"
	"github.com/lox/blackjack/internal/history"
	"github.com/lox/blackjack/internal/randutil"
	"github.com/lox/blackjack/internal/statistics"
	"github.com/lox/blackjack/strategy"
)

const maxDefaultWorkers = 8

// Recorder receives a record for every completed round. Implemented by
// *history.Writer; nil disables recording.
type Recorder interface {
	Record(rec history.Record)
}

// Config holds configuration for a simulation run.
type Config struct {
	Rounds  int
	Bet     float64
	Seed    int64
	Workers int // default min(NumCPU, 8)
	Rules   engine.Rules

	Logger   *log.Logger
	Clock    quartz.Clock
	Recorder Recorder
}

// Simulator runs blackjack round simulations.
type Simulator struct {
	cfg Config
}

// New validates the configuration, applies defaults and returns a
// simulator.
func New(cfg Config) (*Simulator, error) {
	if cfg.Rounds <= 0 {
		return nil, fmt.Errorf("rounds must be positive, got %d", cfg.Rounds)
	}
	if cfg.Bet <= 0 {
		return nil, fmt.Errorf("bet must be positive, got %g", cfg.Bet)
	}
	if err := cfg.Rules.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules: %w", err)
	}
	if cfg.Workers <= 0 {
		cfg.Workers = min(runtime.NumCPU(), maxDefaultWorkers)
	}
	if cfg.Workers > cfg.Rounds {
		cfg.Workers = cfg.Rounds
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(os.Stderr)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	return &Simulator{cfg: cfg}, nil
}

// Run plays the configured number of rounds and returns the merged
// statistics. Worker w plays rounds w, w+workers, w+2*workers and so
// on; partials merge in worker order.
func (s *Simulator) Run(ctx context.Context) (*statistics.Statistics, error) {
	cfg := s.cfg
	cfg.Logger.Debug("starting simulation",
		"rounds", cfg.Rounds, "bet", cfg.Bet, "seed", cfg.Seed, "workers", cfg.Workers)

	var completed atomic.Int64
	progressCtx, stopProgress := context.WithCancel(ctx)
	defer stopProgress()
	progress := cfg.Clock.TickerFunc(progressCtx, time.Second, func() error {
		cfg.Logger.Info("simulation progress",
			"completed", completed.Load(), "total", cfg.Rounds)
		return nil
	}, "progress")

	partials := make([]*statistics.Statistics, cfg.Workers)
	g, gctx := errgroup.WithContext(ctx)
	for w := range cfg.Workers {
		g.Go(func() error {
			stats := &statistics.Statistics{}
			partials[w] = stats
			for i := w; i < cfg.Rounds; i += cfg.Workers {
				if err := gctx.Err(); err != nil {
					return err
				}
				result, err := s.playRound(i)
				if err != nil {
					return fmt.Errorf("round %d: %w", i, err)
				}
				stats.Add(result)
				completed.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	stopProgress()
	_ = progress.Wait()

	merged := &statistics.Statistics{}
	for _, p := range partials {
		merged.Merge(p)
	}
	if err := merged.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	cfg.Logger.Debug("simulation complete",
		"rounds", merged.Rounds, "mean", merged.Mean(), "house_edge", merged.HouseEdge())
	return merged, nil
}

// playRound plays one advisor-driven round to completion and settles it.
func (s *Simulator) playRound(index int) (statistics.RoundResult, error) {
	seed := randutil.Derive(s.cfg.Seed, uint64(index))
	rng := randutil.New(seed)

	r := engine.NewRound(rng, s.cfg.Rules, s.cfg.Bet)
	var actions []engine.Action
	for r.Phase() != engine.GameOver {
		action := engine.NoAction
		if r.Phase() == engine.PlayerTurn {
			suggested, err := strategy.Suggest(r)
			if err != nil {
				return statistics.RoundResult{}, fmt.Errorf("advisor: %w", err)
			}
			action = suggested
			actions = append(actions, action)
		}
		next, err := r.Advance(action)
		if err != nil {
			return statistics.RoundResult{}, fmt.Errorf("advance: %w", err)
		}
		r = next
	}

	outcomes, err := r.Outcomes()
	if err != nil {
		return statistics.RoundResult{}, fmt.Errorf("outcomes: %w", err)
	}

	result := statistics.RoundResult{
		Seed:     seed,
		Hands:    len(outcomes),
		Outcomes: outcomes,
	}
	for i, o := range outcomes {
		bet := r.Bets()[i]
		result.Wagered += bet
		switch o.Result {
		case engine.Win:
			if o.Reason == engine.ReasonBlackjack {
				result.Net += bet * s.cfg.Rules.BlackjackPayout
			} else {
				result.Net += bet
			}
		case engine.Loss:
			result.Net -= bet
		case engine.Push:
		default:
			panic("simulator: unreachable result")
		}
	}

	if s.cfg.Recorder != nil {
		rec, err := history.NewRecord(r, actions, result.Net, seed, s.cfg.Clock.Now())
		if err != nil {
			return statistics.RoundResult{}, fmt.Errorf("record: %w", err)
		}
		s.cfg.Recorder.Record(rec)
	}
	return result, nil
}
