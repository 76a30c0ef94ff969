package gmetric

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

type CounterVecOpts = VecOpts

type CounterVec interface {
	Inc(labels ...string)
	Add(v float64, labels ...string)
	Collector() *prom.CounterVec
	close() bool
}

type promCounterVec struct {
	registered[*prom.CounterVec]
}

// NewCounterVec registers a counter vector, nil opts give a nil CounterVec.
func NewCounterVec(cfg *CounterVecOpts) (CounterVec, error) {
	if cfg == nil {
		return nil, nil
	}
	vec := prom.NewCounterVec(prom.CounterOpts(cfg.promOpts()), cfg.Labels)
	r, err := register(cfg.Registerer, vec)
	if err != nil {
		return nil, err
	}
	return &promCounterVec{r}, nil
}

func (cv *promCounterVec) Inc(labels ...string) {
	cv.vec.WithLabelValues(labels...).Inc()
}

func (cv *promCounterVec) Add(v float64, labels ...string) {
	cv.vec.WithLabelValues(labels...).Add(v)
}
