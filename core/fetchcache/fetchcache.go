package fetchcache

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/codewandler/fcache-go/core/metrics"
	"github.com/codewandler/fcache-go/core/policy"
	"github.com/codewandler/fcache-go/core/sf"
	"github.com/codewandler/fcache-go/internal/codec"
	"github.com/codewandler/fcache-go/ports/fetch"
	"github.com/codewandler/fcache-go/ports/kv"
)

type Config struct {
	// Store backs the cache. Defaults to a fresh in-memory store private to
	// this instance.
	Store kv.Store
	// Fetcher performs the remote fetch on a miss. Defaults to plain HTTP.
	Fetcher fetch.Fetcher
	// TTL is the default freshness window. Defaults to policy.DefaultTTL.
	TTL time.Duration
	// Family labels this cache in logs and metrics. Defaults to "memory".
	Family string
	// SweepInterval enables a periodic sweep that evicts expired entries
	// nobody reads anymore. 0 keeps the default lazy-only eviction.
	SweepInterval time.Duration
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time

	Log     *slog.Logger
	Metrics metrics.CacheMetrics
}

// Cache is a cached-fetch client for payloads of type T. Responses are
// decoded from JSON; use T = json.RawMessage to keep raw bytes.
type Cache[T any] struct {
	store   kv.Store
	fetcher fetch.Fetcher
	ttl     time.Duration
	family  string
	now     func() time.Time
	log     *slog.Logger
	metrics metrics.CacheMetrics

	flight *sf.Singleflight[T]
	codec  codec.Codec

	cancelSweep context.CancelFunc
	sweepDone   chan struct{}
}

func New[T any](cfg Config) *Cache[T] {
	if cfg.Store == nil {
		cfg.Store = kv.NewMemStore()
	}
	if cfg.Fetcher == nil {
		cfg.Fetcher = fetch.NewHTTP(nil)
	}
	if cfg.TTL == 0 {
		cfg.TTL = policy.DefaultTTL
	}
	if cfg.Family == "" {
		cfg.Family = "memory"
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Log == nil {
		cfg.Log = slog.Default()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = metrics.NopCache()
	}

	c := &Cache[T]{
		store:   cfg.Store,
		fetcher: cfg.Fetcher,
		ttl:     cfg.TTL,
		family:  cfg.Family,
		now:     cfg.Now,
		log: cfg.Log.With(
			slog.String("cache", fmt.Sprintf("%s-%s", cfg.Family, gonanoid.Must(6))),
		),
		metrics: cfg.Metrics,
		flight:  sf.New[T](),
		codec:   codec.JSONCodec{},
	}

	if cfg.SweepInterval > 0 {
		var ctx context.Context
		ctx, c.cancelSweep = context.WithCancel(context.Background())
		c.sweepDone = make(chan struct{})
		go c.runSweep(ctx, cfg.SweepInterval)
	}

	return c
}

// Fetch returns the payload for url, from cache when fresh, otherwise via
// exactly one remote fetch. The cache key defaults to the url.
func (c *Cache[T]) Fetch(ctx context.Context, url string, opts ...FetchOption) (out T, err error) {
	o := fetchOptions{key: url, ttl: c.ttl}
	for _, opt := range opts {
		opt(&o)
	}

	if !o.force {
		v, outcome, err := policy.Lookup[T](ctx, c.store, o.key, o.ttl, c.now())
		if err != nil {
			return out, err
		}
		if outcome == policy.OutcomeHit {
			c.metrics.Hit(c.family)
			return v, nil
		}
		if outcome == policy.OutcomeMissExpired || outcome == policy.OutcomeMissCorrupt {
			c.metrics.Eviction(c.family)
		}
	}
	c.metrics.Miss(c.family)

	// Concurrent misses on one key share a single fetch; later callers get
	// the first caller's result without issuing their own request.
	return c.flight.Do(o.key, func() (out T, err error) {
		c.log.Debug("fetching", slog.String("url", url), slog.String("key", o.key))

		timer := c.metrics.FetchDuration(c.family)
		raw, err := c.fetcher.Fetch(ctx, url, o.fetch)
		timer.ObserveDuration()
		if err != nil {
			// The store stays untouched: a failed fetch must not poison
			// or evict whatever is already cached.
			return out, err
		}

		if err := c.codec.Unmarshal(raw, &out); err != nil {
			return out, fmt.Errorf("decode response %s: %w", url, err)
		}

		if err := policy.Write(ctx, c.store, o.key, out, c.now()); err != nil {
			return out, err
		}
		return out, nil
	})
}

// ClearKey removes one entry and reports whether it was present.
func (c *Cache[T]) ClearKey(ctx context.Context, key string) (bool, error) {
	return c.store.Delete(ctx, key)
}

// Clear empties the store unconditionally.
func (c *Cache[T]) Clear(ctx context.Context) error {
	return c.store.Clear(ctx)
}

// Keys returns a snapshot of the currently cached keys, in unspecified order.
func (c *Cache[T]) Keys(ctx context.Context) ([]string, error) {
	return c.store.Keys(ctx)
}

// Close stops the background sweep, if one was enabled. The cache itself
// stays usable.
func (c *Cache[T]) Close() {
	if c.cancelSweep != nil {
		c.cancelSweep()
		<-c.sweepDone
	}
}
