package metrics

// nopCounter is a no-op implementation of Counter.
type nopCounter struct{}

func (nopCounter) Inc()        {}
func (nopCounter) Add(float64) {}

// nopGauge is a no-op implementation of Gauge.
type nopGauge struct{}

func (nopGauge) Set(float64) {}
func (nopGauge) Inc()        {}
func (nopGauge) Dec()        {}

// nopTimer is a no-op implementation of Timer.
type nopTimer struct{}

func (nopTimer) ObserveDuration() {}

// nopCache is a no-op implementation of CacheMetrics.
type nopCache struct{}

func (nopCache) Hit(string)                 {}
func (nopCache) Miss(string)                {}
func (nopCache) Eviction(string)            {}
func (nopCache) FetchDuration(string) Timer { return nopTimer{} }

// NopCounter returns a no-op Counter.
func NopCounter() Counter { return nopCounter{} }

// NopGauge returns a no-op Gauge.
func NopGauge() Gauge { return nopGauge{} }

// NopTimer returns a no-op Timer.
func NopTimer() Timer { return nopTimer{} }

// NopCache returns a no-op CacheMetrics.
func NopCache() CacheMetrics { return nopCache{} }
