// Package fetchcache bundles a backing store and a remote fetcher into a
// self-contained cached-fetch client.
//
//	c := fetchcache.New[Weather](fetchcache.Config{TTL: 5 * time.Minute})
//	defer c.Close()
//
//	w, err := c.Fetch(ctx, "https://api.example.com/weather")
//
// A fresh entry answers from the store with zero network I/O. A miss
// (absent, expired or forced) performs exactly one fetch, stores the wrapped
// result under the key and returns the payload. Concurrent misses on the
// same key share a single in-flight fetch.
//
// Fetch failures surface unmodified and never touch the store, so a failed
// refresh leaves any prior entry exactly as it was.
package fetchcache
