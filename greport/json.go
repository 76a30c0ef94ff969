package greport

import (
	"context"
	"io"
	"sync"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type resultLine struct {
	Kind string `json:"kind"`
	gstrategy.Result
}

type payoffLine struct {
	Kind string `json:"kind"`
	gstrategy.Payoff
}

// JSONReporter writes one JSON document per line. Safe for concurrent use.
// A value that cannot be encoded, such as a NaN payoff, is skipped and recorded.
// A write error stops further output. Err returns the first error of either kind.
type JSONReporter struct {
	mu     sync.Mutex
	w      io.Writer
	err    error
	broken bool
}

func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

func (r *JSONReporter) ReportResult(_ context.Context, res gstrategy.Result) {
	r.write(&resultLine{Kind: kindResult, Result: res})
}

func (r *JSONReporter) ReportPayoff(_ context.Context, p gstrategy.Payoff) {
	r.write(&payoffLine{Kind: kindPayoff, Payoff: p})
}

func (r *JSONReporter) write(v interface{}) {
	data, err := json.Marshal(v)

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.broken {
		return
	}
	if err != nil {
		r.setErr(errors.Wrap(err, "json encode"))
		return
	}
	if _, err := r.w.Write(append(data, '\n')); err != nil {
		r.broken = true
		r.setErr(errors.Wrap(err, "json report"))
	}
}

func (r *JSONReporter) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Err returns the first encode or write error.
func (r *JSONReporter) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}
