package gmetric

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// SummaryVecOpts adds quantile objectives, quantile -> allowed error, to VecOpts.
type SummaryVecOpts struct {
	VecOpts
	Objectives map[float64]float64
}

type SummaryVec interface {
	Observe(v float64, labels ...string)
	Collector() *prom.SummaryVec
	close() bool
}

type promSummaryVec struct {
	registered[*prom.SummaryVec]
}

// NewSummaryVec registers a summary vector, nil opts give a nil SummaryVec.
func NewSummaryVec(cfg *SummaryVecOpts) (SummaryVec, error) {
	if cfg == nil {
		return nil, nil
	}
	o := cfg.promOpts()
	vec := prom.NewSummaryVec(prom.SummaryOpts{
		Namespace:   o.Namespace,
		Subsystem:   o.Subsystem,
		Name:        o.Name,
		Help:        o.Help,
		ConstLabels: o.ConstLabels,
		Objectives:  cfg.Objectives,
	}, cfg.Labels)
	r, err := register(cfg.Registerer, vec)
	if err != nil {
		return nil, err
	}
	return &promSummaryVec{r}, nil
}

func (sv *promSummaryVec) Observe(v float64, labels ...string) {
	sv.vec.WithLabelValues(labels...).Observe(v)
}
