package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/codewandler/fcache-go/core/metrics"
)

// cacheMetrics implements metrics.CacheMetrics using Prometheus.
type cacheMetrics struct {
	hits          *prometheus.CounterVec
	misses        *prometheus.CounterVec
	evictions     *prometheus.CounterVec
	fetchDuration *prometheus.HistogramVec
}

// NewCacheMetrics creates a Prometheus implementation of CacheMetrics and
// registers its collectors with reg.
func NewCacheMetrics(reg prometheus.Registerer) metrics.CacheMetrics {
	m := &cacheMetrics{
		hits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fcache_hits_total",
			Help: "Total number of lookups answered from the cache",
		}, []string{"family"}),

		misses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fcache_misses_total",
			Help: "Total number of lookups that fell through to a fetch",
		}, []string{"family"}),

		evictions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "fcache_evictions_total",
			Help: "Total number of expired or corrupt entries evicted",
		}, []string{"family"}),

		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "fcache_fetch_duration_seconds",
			Help:    "Remote fetch latency on cache misses in seconds",
			Buckets: defaultBuckets,
		}, []string{"family"}),
	}

	reg.MustRegister(m.hits, m.misses, m.evictions, m.fetchDuration)
	return m
}

func (m *cacheMetrics) Hit(family string)      { m.hits.WithLabelValues(family).Inc() }
func (m *cacheMetrics) Miss(family string)     { m.misses.WithLabelValues(family).Inc() }
func (m *cacheMetrics) Eviction(family string) { m.evictions.WithLabelValues(family).Inc() }

func (m *cacheMetrics) FetchDuration(family string) metrics.Timer {
	return newTimer(m.fetchDuration.WithLabelValues(family))
}

var _ metrics.CacheMetrics = (*cacheMetrics)(nil)
