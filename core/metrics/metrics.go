// Package metrics provides abstract metrics interfaces that allow pluggable
// instrumentation backends (Prometheus, StatsD, etc.) without coupling the
// cache core to any specific implementation.
package metrics

// Counter is a monotonically increasing metric.
type Counter interface {
	// Inc increments the counter by 1.
	Inc()
	// Add increments the counter by delta. delta must be >= 0.
	Add(delta float64)
}

// Gauge is a metric that can go up and down.
type Gauge interface {
	// Set sets the gauge to value.
	Set(value float64)
	// Inc increments the gauge by 1.
	Inc()
	// Dec decrements the gauge by 1.
	Dec()
}

// Timer measures the duration of an operation. Call ObserveDuration when
// the operation completes to record the elapsed time.
type Timer interface {
	// ObserveDuration records the elapsed time since the timer was created.
	ObserveDuration()
}

// CacheMetrics instruments cache lookups and fetches. The family label
// distinguishes cache instances sharing one registry (e.g. "memory",
// "sqlite", "nats").
type CacheMetrics interface {
	// Hit records a lookup answered from the store.
	Hit(family string)
	// Miss records a lookup that fell through to a fetch (absent, expired
	// or forced).
	Miss(family string)
	// Eviction records an entry removed because it was expired or corrupt.
	Eviction(family string)
	// FetchDuration times the remote fetch on a miss.
	FetchDuration(family string) Timer
}
