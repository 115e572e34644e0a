package fetchcache

import (
	"context"
	"log/slog"
	"time"

	"github.com/codewandler/fcache-go/core/entry"
	"github.com/codewandler/fcache-go/core/policy"
)

// runSweep periodically evicts expired entries so keys that are never read
// again do not accumulate in long-lived processes. Lookup semantics are
// unchanged; the sweep only does eagerly what evict-on-read would do later.
func (c *Cache[T]) runSweep(ctx context.Context, interval time.Duration) {
	defer close(c.sweepDone)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweepOnce(ctx)
		}
	}
}

func (c *Cache[T]) sweepOnce(ctx context.Context) {
	keys, err := c.store.Keys(ctx)
	if err != nil {
		c.log.Warn("sweep: listing keys failed", slog.Any("error", err))
		return
	}

	now := c.now()
	swept := 0
	for _, key := range keys {
		rec, err := c.store.Get(ctx, key)
		if err != nil {
			continue
		}

		at, decErr := entry.DecodeTime(rec.Data)
		if decErr == nil && policy.IsValid(at, c.ttl, now) {
			continue
		}

		ok, err := c.store.Delete(ctx, key)
		if err != nil {
			c.log.Warn("sweep: evict failed", slog.String("key", key), slog.Any("error", err))
			continue
		}
		if ok {
			c.metrics.Eviction(c.family)
			swept++
		}
	}

	if swept > 0 {
		c.log.Debug("sweep complete", slog.Int("evicted", swept))
	}
}
