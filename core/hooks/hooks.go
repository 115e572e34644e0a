package hooks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/codewandler/fcache-go/core/entry"
	"github.com/codewandler/fcache-go/core/metrics"
	"github.com/codewandler/fcache-go/core/policy"
	"github.com/codewandler/fcache-go/ports/kv"
)

// WriteFunc persists a freshly fetched payload and returns the value to
// surface to the caller.
type WriteFunc[T any] func(ctx context.Context, payload T) (T, error)

// ReadFunc looks up a cached payload. ok is false on any miss.
type ReadFunc[T any] func(ctx context.Context, key string) (payload T, ok bool, err error)

type Config struct {
	// TTL is the freshness window. Defaults to policy.DefaultTTL.
	TTL time.Duration
	// Key is the key OnWrite persists under, and the fallback when OnRead
	// is called with an empty key. Required.
	Key string
	// Family labels this cache in metrics. Defaults to "memory".
	Family string
	// Now is the clock. Defaults to time.Now.
	Now func() time.Time

	Log     *slog.Logger
	Metrics metrics.CacheMetrics
}

// Hooks binds a backing store to a validity policy and exposes the pair of
// functions an orchestrator plugs into its fetch cycle.
type Hooks[T any] struct {
	store   kv.Store
	ttl     time.Duration
	key     string
	family  string
	now     func() time.Time
	log     *slog.Logger
	metrics metrics.CacheMetrics
}

// New creates a hook pair over store. A nil store or empty key is a
// programming error and panics: hooks are wired at startup, and a
// misconfigured pair must fail there, not silently report misses later.
func New[T any](store kv.Store, cfg Config) *Hooks[T] {
	if store == nil {
		panic("hooks: nil store")
	}
	if cfg.Key == "" {
		panic("hooks: key is required")
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

	return &Hooks[T]{
		store:   store,
		ttl:     cfg.TTL,
		key:     cfg.Key,
		family:  cfg.Family,
		now:     cfg.Now,
		log:     cfg.Log.With(slog.String("cache_key", cfg.Key)),
		metrics: cfg.Metrics,
	}
}

// OnWrite wraps payload with the current fetch time and persists it,
// replacing any prior entry. It returns the bare payload so the orchestrator
// can hand it straight to its caller.
func (h *Hooks[T]) OnWrite(ctx context.Context, payload T) (T, error) {
	if err := policy.Write(ctx, h.store, h.key, payload, h.now()); err != nil {
		return payload, err
	}
	h.log.Debug("cache entry written")
	return payload, nil
}

// OnRead looks up key (or the configured default when key is empty) and
// applies the validity policy. ok is false for absent, expired and corrupt
// entries; the orchestrator should fetch in all three cases.
func (h *Hooks[T]) OnRead(ctx context.Context, key string) (out T, ok bool, err error) {
	if key == "" {
		key = h.key
	}

	v, outcome, err := policy.Lookup[T](ctx, h.store, key, h.ttl, h.now())
	if err != nil {
		return out, false, err
	}

	switch outcome {
	case policy.OutcomeHit:
		h.metrics.Hit(h.family)
		return v, true, nil
	case policy.OutcomeMissExpired, policy.OutcomeMissCorrupt:
		h.metrics.Eviction(h.family)
	}
	h.metrics.Miss(h.family)
	h.log.Debug("cache miss", slog.String("outcome", outcome.String()))
	return out, false, nil
}

// Metadata reports the fetch time recorded for key, without validity
// filtering. It is the side channel for callers that previously relied on
// the envelope return shape to learn the timestamp.
func (h *Hooks[T]) Metadata(ctx context.Context, key string) (time.Time, bool, error) {
	if key == "" {
		key = h.key
	}

	rec, err := h.store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, fmt.Errorf("cache metadata %q: %w", key, err)
	}

	at, err := entry.DecodeTime(rec.Data)
	if err != nil {
		return time.Time{}, false, nil
	}
	return at, true, nil
}

// Pair exports the hooks as plain functions for orchestrators that accept
// function-shaped slots.
func (h *Hooks[T]) Pair() (WriteFunc[T], ReadFunc[T]) {
	return h.OnWrite, h.OnRead
}
