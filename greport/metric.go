package greport

import (
	"context"
	"math"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy"
	"code.bydev.io/fbu/gateway/gway.git/gstrategy/gmetric"
)

const (
	kindResult    = "result"
	kindPayoff    = "payoff"
	kindMaxProfit = "max_profit"
	kindMaxLoss   = "max_loss"

	sideProfit = "profit"
	sideLoss   = "loss"
)

type metricReporter struct {
	m *gmetric.StrategyMetrics
}

// NewMetricReporter counts evaluations and unbounded results and observes finite values.
func NewMetricReporter(m *gmetric.StrategyMetrics) Reporter {
	return &metricReporter{m: m}
}

func (r *metricReporter) ReportResult(_ context.Context, res gstrategy.Result) {
	name := res.Strategy.String()
	r.m.Evaluations.Inc(name, kindResult)
	r.observe(name, res.MaxProfit, kindMaxProfit, sideProfit)
	r.observe(name, res.MaxLoss, kindMaxLoss, sideLoss)
}

func (r *metricReporter) ReportPayoff(_ context.Context, p gstrategy.Payoff) {
	name := p.Strategy.String()
	r.m.Evaluations.Inc(name, kindPayoff)
	if !math.IsNaN(p.Value) && !math.IsInf(p.Value, 0) {
		r.m.Values.Observe(p.Value, name, kindPayoff)
	}
}

// observe skips NaN bounds, they are neither a value nor unbounded.
func (r *metricReporter) observe(name string, b gstrategy.Bound, kind, side string) {
	if v, ok := b.Value(); ok {
		r.m.Values.Observe(v, name, kind)
		return
	}
	if b.Sign() != 0 {
		r.m.Unbounded.Inc(name, side)
	}
}
