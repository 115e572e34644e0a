// Package entry defines the cache entry envelope: a payload stamped with the
// wall-clock instant it was fetched.
//
// Entries are immutable. Refreshing a value means building a new entry with
// [Wrap]; the fetch time of an existing entry is never changed in place.
//
// The persisted form is a two-field JSON envelope:
//
//	{"payload": <opaque JSON>, "fetchedAt": <unix milliseconds>}
//
// Unix milliseconds round-trip through any string/JSON medium without losing
// the instant beyond millisecond precision, which is all the validity policy
// needs.
package entry
