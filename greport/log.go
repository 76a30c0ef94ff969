package greport

import (
	"context"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy"
	"code.bydev.io/fbu/gateway/gway.git/gstrategy/glog"
)

type logReporter struct {
	log       glog.Logger
	precision int32
}

// NewLogReporter logs "Maximum profit", "Maximum loss" and "Payoff" lines at
// info level, values rounded to precision decimal places. A nil logger uses glog.Default().
func NewLogReporter(l glog.Logger, precision int32) Reporter {
	if l == nil {
		l = glog.Default()
	}
	if precision < 0 {
		precision = 0
	}
	return &logReporter{log: l, precision: precision}
}

func (r *logReporter) ReportResult(ctx context.Context, res gstrategy.Result) {
	fields := []glog.Field{glog.String("strategy", res.Strategy.String())}
	if len(res.Legs) != 0 {
		fields = append(fields, glog.Any("legs", res.Legs))
	}
	r.log.Info(ctx, "Maximum profit: "+r.formatBound(res.MaxProfit), fields...)
	r.log.Info(ctx, "Maximum loss: "+r.formatBound(res.MaxLoss), fields...)
}

func (r *logReporter) ReportPayoff(ctx context.Context, p gstrategy.Payoff) {
	r.log.Info(ctx, "Payoff: "+r.format(p.Value),
		glog.String("strategy", p.Strategy.String()),
		glog.Float64("underlying", p.Underlying))
}

func (r *logReporter) formatBound(b gstrategy.Bound) string {
	v, ok := b.Value()
	if !ok {
		return b.String()
	}
	return r.format(v)
}

// format rounds finite values, NaN and infinities print as "NaN", "+Inf" and "-Inf".
func (r *logReporter) format(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return decimal.NewFromFloat(v).StringFixed(r.precision)
}
