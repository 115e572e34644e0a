package kv

import (
	"context"
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
)

// Entry is the raw record a Store persists. Interpretation of Data is up to
// the caller; the cache layers above store a JSON envelope in it.
type Entry struct {
	Data []byte
}

// Store is a key-value backing store for cache records.
//
// Get returns ErrNotFound for keys that were never written, and for keys
// whose record is an empty sentinel (zero-length data). Durable media that
// cannot truly remove a record may implement Delete by writing such a
// sentinel; readers must not be able to tell the difference.
type Store interface {
	Put(ctx context.Context, key string, entry Entry) error
	Get(ctx context.Context, key string) (entry Entry, err error)
	// Delete removes the record for key and reports whether one was present.
	Delete(ctx context.Context, key string) (bool, error)
	// Keys returns a snapshot of the current keys, in unspecified order.
	Keys(ctx context.Context) ([]string, error)
	// Clear removes all records unconditionally.
	Clear(ctx context.Context) error
}
