package fetchcache

import (
	"time"

	"github.com/codewandler/fcache-go/ports/fetch"
)

type fetchOptions struct {
	key   string
	ttl   time.Duration
	force bool
	fetch fetch.Options
}

// FetchOption configures a single Fetch call.
type FetchOption func(*fetchOptions)

// WithKey caches under an explicit key instead of the request URL.
func WithKey(key string) FetchOption {
	return func(o *fetchOptions) {
		if key != "" {
			o.key = key
		}
	}
}

// WithTTL overrides the cache-level TTL for this call. An explicit 0 means
// always expired: the entry is stored but never answers a later lookup.
func WithTTL(ttl time.Duration) FetchOption {
	return func(o *fetchOptions) {
		o.ttl = ttl
	}
}

// WithForce bypasses the lookup and always fetches, overwriting any prior
// entry on success.
func WithForce() FetchOption {
	return func(o *fetchOptions) {
		o.force = true
	}
}

// WithFetchOptions passes options through to the fetcher untouched.
func WithFetchOptions(opts fetch.Options) FetchOption {
	return func(o *fetchOptions) {
		o.fetch = opts
	}
}
