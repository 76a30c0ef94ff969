package greport

import (
	"io"
	"os"

	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"

	"code.bydev.io/fbu/gateway/gway.git/gstrategy/gconfig"
	"code.bydev.io/fbu/gateway/gway.git/gstrategy/glog"
	"code.bydev.io/fbu/gateway/gway.git/gstrategy/gmetric"
)

type options struct {
	logger     glog.Logger
	writer     io.Writer
	registerer prom.Registerer
}

type Option func(o *options)

// WithLogger sets the logger of the log reporter instead of one built from cfg.Log.
func WithLogger(l glog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithWriter sets the output of the JSON reporter, default os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

// WithRegisterer sets where metrics are registered, default the prometheus default registry.
func WithRegisterer(reg prom.Registerer) Option {
	return func(o *options) {
		o.registerer = reg
	}
}

// Stack is the reporter set built from configuration. Disabled parts are nil.
type Stack struct {
	Reporter
	Logger  glog.Logger
	JSON    *JSONReporter
	Stats   *Stats
	Metrics *gmetric.StrategyMetrics
}

// New builds the reporters enabled in cfg. A nil cfg means gconfig.Default().
// Metrics already registered on the registerer, e.g. by a Stack that was not
// closed, make New fail.
func New(cfg *gconfig.Config, opts ...Option) (*Stack, error) {
	if cfg == nil {
		cfg = gconfig.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	o := &options{}
	for _, fn := range opts {
		fn(o)
	}

	s := &Stack{}
	var reporters []Reporter
	if cfg.Report.Log {
		s.Logger = o.logger
		if s.Logger == nil {
			lc, err := cfg.Log.Glog()
			if err != nil {
				return nil, err
			}
			s.Logger = glog.New(lc)
		}
		reporters = append(reporters, NewLogReporter(s.Logger, cfg.Report.Precision))
	}
	if cfg.Report.JSON {
		w := o.writer
		if w == nil {
			w = os.Stdout
		}
		s.JSON = NewJSONReporter(w)
		reporters = append(reporters, s.JSON)
	}
	if cfg.Report.Stats {
		s.Stats = NewStats()
		reporters = append(reporters, s.Stats)
	}
	if cfg.Metric.Enabled {
		m, err := gmetric.NewStrategyMetrics(cfg.Metric.Namespace, o.registerer)
		if err != nil {
			return nil, errors.Wrap(err, "strategy metrics")
		}
		s.Metrics = m
		reporters = append(reporters, NewMetricReporter(s.Metrics))
	}

	s.Reporter = Multi(reporters...)
	return s, nil
}

// Close flushes the logger, unregisters metrics and returns the first JSON write error.
func (s *Stack) Close() error {
	if s.Metrics != nil {
		s.Metrics.Close()
	}
	if s.Logger != nil {
		_ = s.Logger.Sync()
	}
	if s.JSON != nil {
		return s.JSON.Err()
	}
	return nil
}
