package gmetric

import (
	"github.com/pkg/errors"
	prom "github.com/prometheus/client_golang/prometheus"
)

type Labels map[string]string

const strategySubsystem = "strategy"

// ErrEmptyNamespace is returned by NewStrategyMetrics for an empty namespace.
var ErrEmptyNamespace = errors.New("empty metric namespace")

// StrategyMetrics are the metrics recorded for evaluated strategies.
type StrategyMetrics struct {
	// Evaluations counts results and payoffs, labels: strategy, kind
	Evaluations CounterVec
	// Unbounded counts unbounded results, labels: strategy, side
	Unbounded CounterVec
	// Values observes finite profit, loss and payoff values, labels: strategy, kind
	Values SummaryVec
}

// NewStrategyMetrics registers the strategy metrics under namespace on reg,
// a nil reg means the default registry. When any of them is already registered
// the ones added so far are unregistered and the error is returned.
func NewStrategyMetrics(namespace string, reg prom.Registerer) (*StrategyMetrics, error) {
	if namespace == "" {
		return nil, ErrEmptyNamespace
	}

	m := &StrategyMetrics{}
	var err error
	m.Evaluations, err = NewCounterVec(&CounterVecOpts{
		Namespace:  namespace,
		Subsystem:  strategySubsystem,
		Name:       "evaluations_total",
		Help:       "strategy evaluations by kind",
		Labels:     []string{"strategy", "kind"},
		Registerer: reg,
	})
	if err != nil {
		return nil, errors.Wrap(err, "register evaluations_total")
	}

	m.Unbounded, err = NewCounterVec(&CounterVecOpts{
		Namespace:  namespace,
		Subsystem:  strategySubsystem,
		Name:       "unbounded_total",
		Help:       "results with unlimited profit or unlimited loss",
		Labels:     []string{"strategy", "side"},
		Registerer: reg,
	})
	if err != nil {
		m.Close()
		return nil, errors.Wrap(err, "register unbounded_total")
	}

	m.Values, err = NewSummaryVec(&SummaryVecOpts{
		VecOpts: VecOpts{
			Namespace:  namespace,
			Subsystem:  strategySubsystem,
			Name:       "value",
			Help:       "finite max profit, max loss and payoff values",
			Labels:     []string{"strategy", "kind"},
			Registerer: reg,
		},
		Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
	})
	if err != nil {
		m.Close()
		return nil, errors.Wrap(err, "register value")
	}
	return m, nil
}

// Close unregisters all strategy metrics that were registered.
func (m *StrategyMetrics) Close() {
	if m.Evaluations != nil {
		m.Evaluations.close()
	}
	if m.Unbounded != nil {
		m.Unbounded.close()
	}
	if m.Values != nil {
		m.Values.close()
	}
}
