package greport

import (
	"context"

	"go.uber.org/atomic"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy"
)

// Stats tallies reported values without locking.
type Stats struct {
	results         atomic.Int64
	payoffs         atomic.Int64
	unboundedProfit atomic.Int64
	unboundedLoss   atomic.Int64
}

type StatsSnapshot struct {
	Results         int64 `json:"results"`
	Payoffs         int64 `json:"payoffs"`
	UnboundedProfit int64 `json:"unbounded_profit"`
	UnboundedLoss   int64 `json:"unbounded_loss"`
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) ReportResult(_ context.Context, r gstrategy.Result) {
	s.results.Inc()
	if r.MaxProfit.Sign() != 0 {
		s.unboundedProfit.Inc()
	}
	if r.MaxLoss.Sign() != 0 {
		s.unboundedLoss.Inc()
	}
}

func (s *Stats) ReportPayoff(context.Context, gstrategy.Payoff) {
	s.payoffs.Inc()
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Results:         s.results.Load(),
		Payoffs:         s.payoffs.Load(),
		UnboundedProfit: s.unboundedProfit.Load(),
		UnboundedLoss:   s.unboundedLoss.Load(),
	}
}
