// Package statistics aggregates per-round simulation results into
// summary measures: mean, variance, confidence intervals, percentiles
// and an outcome breakdown.
package statistics

import (
	"fmt"
	"math"
	"sort"

	"github.com/lox/blackjack/engine"
)

// RoundResult is the settled outcome of one simulated round.
type RoundResult struct {
	Net      float64 // net winnings across all hands, negative for a loss
	Wagered  float64 // total amount staked, including splits and doubles
	Seed     int64   // per-round RNG seed, for replaying the round
	Hands    int     // player hands at round end (>1 after splits)
	Outcomes []engine.Outcome
}

// Statistics accumulates round results. Add one result at a time, or
// merge per-worker partials with Merge; both keep every per-round net
// for the order statistics.
type Statistics struct {
	Rounds  int
	Net     float64
	Net2    float64   // sum of squares for variance
	Values  []float64 // per-round nets for median/percentiles
	Wagered float64

	Wins       int
	Losses     int
	Pushes     int
	Blackjacks int // hands won by a natural
	Splits     int // rounds that ended with more than one hand
}

// Add incorporates one round result.
func (s *Statistics) Add(result RoundResult) {
	net := result.Net
	s.Rounds++
	s.Net += net
	s.Net2 += net * net
	s.Values = append(s.Values, net)
	s.Wagered += result.Wagered

	if result.Hands > 1 {
		s.Splits++
	}
	for _, o := range result.Outcomes {
		switch o.Result {
		case engine.Win:
			s.Wins++
			if o.Reason == engine.ReasonBlackjack {
				s.Blackjacks++
			}
		case engine.Loss:
			s.Losses++
		case engine.Push:
			s.Pushes++
		default:
			panic("statistics: unreachable result")
		}
	}
}

// Merge folds another Statistics value into this one. Used to combine
// per-worker partials; the merged Values retain every round.
func (s *Statistics) Merge(other *Statistics) {
	s.Rounds += other.Rounds
	s.Net += other.Net
	s.Net2 += other.Net2
	s.Values = append(s.Values, other.Values...)
	s.Wagered += other.Wagered
	s.Wins += other.Wins
	s.Losses += other.Losses
	s.Pushes += other.Pushes
	s.Blackjacks += other.Blackjacks
	s.Splits += other.Splits
}

// Mean returns the arithmetic mean net per round.
func (s *Statistics) Mean() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.Net / float64(s.Rounds)
}

// Variance returns the sample variance of per-round nets.
func (s *Statistics) Variance() float64 {
	if s.Rounds < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.Net2 - float64(s.Rounds)*mean*mean) / float64(s.Rounds-1)
}

// StdDev returns the sample standard deviation.
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean.
func (s *Statistics) StdError() float64 {
	if s.Rounds == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Rounds))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean.
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// HouseEdge returns the casino's take as a fraction of the total amount
// wagered. Positive means the house is winning.
func (s *Statistics) HouseEdge() float64 {
	if s.Wagered == 0 {
		return 0
	}
	return -s.Net / s.Wagered
}

// Median returns the median per-round net.
func (s *Statistics) Median() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	n := len(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2
	}
	return sorted[n/2]
}

// Percentile returns the per-round net at the given percentile (0.0 to
// 1.0), linearly interpolated between observations.
func (s *Statistics) Percentile(p float64) float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sorted := make([]float64, len(s.Values))
	copy(sorted, s.Values)
	sort.Float64s(sorted)

	index := p * float64(len(sorted)-1)
	lower := int(index)
	upper := lower + 1
	if upper >= len(sorted) {
		return sorted[len(sorted)-1]
	}
	weight := index - float64(lower)
	return sorted[lower]*(1-weight) + sorted[upper]*weight
}

// Validate checks the internal accounting for consistency.
func (s *Statistics) Validate() error {
	if s.Rounds <= 0 {
		return fmt.Errorf("invalid round count: %d", s.Rounds)
	}
	if len(s.Values) != s.Rounds {
		return fmt.Errorf("values length (%d) does not match round count (%d)",
			len(s.Values), s.Rounds)
	}
	var sum float64
	for _, v := range s.Values {
		sum += v
	}
	if math.Abs(sum-s.Net) > 1e-6 {
		return fmt.Errorf("net ledger mismatch: sum of values %.6f, Net %.6f", sum, s.Net)
	}
	totalHands := s.Wins + s.Losses + s.Pushes
	if totalHands < s.Rounds {
		return fmt.Errorf("hand outcomes (%d) fewer than rounds (%d)", totalHands, s.Rounds)
	}
	if s.Blackjacks > s.Wins {
		return fmt.Errorf("blackjack wins (%d) exceed total wins (%d)", s.Blackjacks, s.Wins)
	}
	return nil
}
