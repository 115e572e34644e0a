// Package policy implements the freshness rules of the cache: when an entry
// counts as valid and what happens to it when it does not.
//
// Expired and undecodable records are evicted lazily, at the moment a lookup
// detects them. There is no background sweep here; long-lived processes that
// want one can enable it at the fetchcache level.
package policy

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/codewandler/fcache-go/core/entry"
	"github.com/codewandler/fcache-go/ports/kv"
)

// DefaultTTL applies whenever a caller does not set an explicit duration.
const DefaultTTL = time.Hour

// Outcome classifies the result of a cache lookup.
type Outcome int

const (
	OutcomeHit Outcome = iota
	OutcomeMissAbsent
	OutcomeMissExpired
	OutcomeMissCorrupt
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeMissAbsent:
		return "miss_absent"
	case OutcomeMissExpired:
		return "miss_expired"
	case OutcomeMissCorrupt:
		return "miss_corrupt"
	default:
		return "unknown"
	}
}

// IsValid reports whether an entry fetched at fetchedAt is still fresh at now
// for the given ttl. The boundary is strict: an entry aged exactly ttl is
// expired. A ttl <= 0 is never valid.
func IsValid(fetchedAt time.Time, ttl time.Duration, now time.Time) bool {
	return now.Sub(fetchedAt) < ttl
}

// Lookup reads key from store and applies the validity policy.
//
// Absent records are a miss. Expired records are deleted and reported as a
// miss; the store never retains stale data past detection. Records whose
// envelope cannot be decoded are treated the same way as expired ones: a
// corrupt entry degrades to a refetch, it never fails the caller.
func Lookup[T any](ctx context.Context, store kv.Store, key string, ttl time.Duration, now time.Time) (out T, outcome Outcome, err error) {
	rec, err := store.Get(ctx, key)
	if errors.Is(err, kv.ErrNotFound) {
		return out, OutcomeMissAbsent, nil
	}
	if err != nil {
		return out, OutcomeMissAbsent, fmt.Errorf("cache read %q: %w", key, err)
	}

	e, decErr := entry.Decode[T](rec.Data)
	if decErr != nil {
		if _, err := store.Delete(ctx, key); err != nil {
			return out, OutcomeMissCorrupt, fmt.Errorf("evict corrupt %q: %w", key, err)
		}
		return out, OutcomeMissCorrupt, nil
	}

	if !IsValid(e.FetchedAt, ttl, now) {
		if _, err := store.Delete(ctx, key); err != nil {
			return out, OutcomeMissExpired, fmt.Errorf("evict expired %q: %w", key, err)
		}
		return out, OutcomeMissExpired, nil
	}

	return e.Payload, OutcomeHit, nil
}

// CheckAndEvict is the boolean form of Lookup: payload plus whether the entry
// was present and fresh. Together with [entry.Wrap] it forms the low-level
// pair for callers that run their own transform logic around storage.
func CheckAndEvict[T any](ctx context.Context, store kv.Store, key string, ttl time.Duration, now time.Time) (T, bool, error) {
	v, outcome, err := Lookup[T](ctx, store, key, ttl, now)
	return v, outcome == OutcomeHit, err
}

// Write wraps payload with the given fetch time and persists it under key,
// replacing any prior record wholesale.
func Write[T any](ctx context.Context, store kv.Store, key string, payload T, at time.Time) error {
	data, err := entry.Encode(entry.WrapAt(payload, at))
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	if err := store.Put(ctx, key, kv.Entry{Data: data}); err != nil {
		return fmt.Errorf("cache write %q: %w", key, err)
	}
	return nil
}
