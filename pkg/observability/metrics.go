// Package observability holds the Prometheus collectors for the Rosetta
// serving surfaces.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the catalog-level collectors.
// One instance per process; register it on the registry the HTTP adapter
// exposes at /metrics.
type Metrics struct {
	RenderTotal     *prometheus.CounterVec
	LookupMissTotal prometheus.Counter
	CacheHitTotal   prometheus.Counter
	CacheMissTotal  prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RenderTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "rosetta",
			Name:      "render_total",
			Help:      "Number of full-catalog renders, by format.",
		}, []string{"format"}),
		LookupMissTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rosetta",
			Name:      "lookup_miss_total",
			Help:      "Number of topic lookups that returned not-found.",
		}),
		CacheHitTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rosetta",
			Name:      "render_cache_hit_total",
			Help:      "Number of renders served from the render cache.",
		}),
		CacheMissTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "rosetta",
			Name:      "render_cache_miss_total",
			Help:      "Number of renders that had to be computed.",
		}),
	}

	reg.MustRegister(m.RenderTotal, m.LookupMissTotal, m.CacheHitTotal, m.CacheMissTotal)
	return m
}
