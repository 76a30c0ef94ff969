// Package greport prints and records strategy results. Calculators in
// gstrategy return values only; callers hand them to a Reporter.
package greport

import (
	"context"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy"
)

//go:generate mockgen -source=reporter.go -destination=reporter_mock.go -package=greport
type Reporter interface {
	ReportResult(ctx context.Context, r gstrategy.Result)
	ReportPayoff(ctx context.Context, p gstrategy.Payoff)
}
