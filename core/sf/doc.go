// Package sf provides a generic single-flight mechanism for deduplicating
// concurrent function calls with the same key.
//
// Single-flight ensures that only one execution of a function is in-flight
// for a given key at a time. If multiple goroutines call [Singleflight.Do]
// with the same key concurrently, only the first call executes the function;
// subsequent callers block until the first call completes and then receive
// the same result.
//
// The cached-fetch layer routes every miss through this package, so
// concurrent misses on one key share a single remote fetch instead of
// racing duplicate requests against the backing store.
package sf
