package gmetric

import (
	prom "github.com/prometheus/client_golang/prometheus"
)

// VecOpts names a metric vector and its label dimensions.
// A nil Registerer means prometheus.DefaultRegisterer.
type VecOpts struct {
	Namespace   string
	Subsystem   string
	Name        string
	Help        string
	Labels      []string
	ConstLabels Labels
	Registerer  prom.Registerer
}

func (o *VecOpts) promOpts() prom.Opts {
	return prom.Opts{
		Namespace:   o.Namespace,
		Subsystem:   o.Subsystem,
		Name:        o.Name,
		Help:        o.Help,
		ConstLabels: prom.Labels(o.ConstLabels),
	}
}

// registered is a collector together with the registry it was added to.
type registered[C prom.Collector] struct {
	vec C
	reg prom.Registerer
}

// register fails with prometheus.AlreadyRegisteredError when a collector with
// the same descriptor is already on reg.
func register[C prom.Collector](reg prom.Registerer, vec C) (registered[C], error) {
	if reg == nil {
		reg = prom.DefaultRegisterer
	}
	if err := reg.Register(vec); err != nil {
		return registered[C]{}, err
	}
	return registered[C]{vec: vec, reg: reg}, nil
}

// Collector exposes the prometheus vector, mostly for tests.
func (r registered[C]) Collector() C {
	return r.vec
}

func (r registered[C]) close() bool {
	return r.reg.Unregister(r.vec)
}
