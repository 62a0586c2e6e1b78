package selection

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsSelection holds Prometheus metrics for the constraint cache.
type metricsSelection struct {
	once sync.Once

	hits               prometheus.Counter
	misses             prometheus.Counter
	templateRecomputes prometheus.Counter
	rebuilds           prometheus.Counter
}

var selMetrics metricsSelection

func (m *metricsSelection) init() {
	m.once.Do(func() {
		m.hits = prometheus.NewCounter(prometheus.CounterOpts{Name: "gate_selection_cache_hits_total", Help: "Lookups served from a fully resolved entry"})
		m.misses = prometheus.NewCounter(prometheus.CounterOpts{Name: "gate_selection_cache_misses_total", Help: "Lookups that ran the provider pipeline for a new entry"})
		m.templateRecomputes = prometheus.NewCounter(prometheus.CounterOpts{Name: "gate_selection_cache_template_recomputes_total", Help: "Lookups that partially recomputed a template entry"})
		m.rebuilds = prometheus.NewCounter(prometheus.CounterOpts{Name: "gate_selection_cache_rebuilds_total", Help: "Generational invalidations triggered by a version change"})

		prometheus.MustRegister(
			m.hits, m.misses, m.templateRecomputes, m.rebuilds,
		)
	})
}

// record helpers - used by the cache for metrics tracking
func recordHit()               { selMetrics.init(); selMetrics.hits.Inc() }
func recordMiss()              { selMetrics.init(); selMetrics.misses.Inc() }
func recordTemplateRecompute() { selMetrics.init(); selMetrics.templateRecomputes.Inc() }
func recordRebuild()           { selMetrics.init(); selMetrics.rebuilds.Inc() }
