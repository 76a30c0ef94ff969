package greport

import (
	"context"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy"
)

type multiReporter []Reporter

// Multi reports to every non-nil reporter in order.
func Multi(reporters ...Reporter) Reporter {
	m := make(multiReporter, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

func (m multiReporter) ReportResult(ctx context.Context, r gstrategy.Result) {
	for _, rp := range m {
		rp.ReportResult(ctx, r)
	}
}

func (m multiReporter) ReportPayoff(ctx context.Context, p gstrategy.Payoff) {
	for _, rp := range m {
		rp.ReportPayoff(ctx, p)
	}
}

type nopReporter struct{}

// Nop discards everything.
func Nop() Reporter {
	return nopReporter{}
}

func (nopReporter) ReportResult(context.Context, gstrategy.Result) {}

func (nopReporter) ReportPayoff(context.Context, gstrategy.Payoff) {}
