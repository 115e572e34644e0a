// Package nats implements the kv.Store port on a NATS JetStream key-value
// bucket, for cache entries shared across restarts or across processes
// pointing at the same bucket.
package nats

import (
	"context"
	"errors"
	"fmt"

	"github.com/nats-io/nats.go/jetstream"

	"github.com/codewandler/fcache-go/ports/kv"
)

type Config struct {
	Connect Connector
	Bucket  string
	// MaxBytes bounds the bucket. Defaults to 1 MiB.
	MaxBytes int64
}

type Store struct {
	kv jetstream.KeyValue
}

func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, errors.New("bucket is required")
	}
	if cfg.MaxBytes == 0 {
		cfg.MaxBytes = 1024 * 1024
	}

	doConnect := cfg.Connect
	if doConnect == nil {
		doConnect = ConnectDefault()
	}

	nc, _, err := doConnect()
	if err != nil {
		return nil, err
	}

	js, err := jetstream.New(nc)
	if err != nil {
		return nil, err
	}

	bucket, err := js.CreateOrUpdateKeyValue(ctx, jetstream.KeyValueConfig{
		Bucket:   cfg.Bucket,
		Storage:  jetstream.FileStorage,
		MaxBytes: cfg.MaxBytes,
	})
	if err != nil {
		return nil, fmt.Errorf("bucket %s: %w", cfg.Bucket, err)
	}

	return &Store{kv: bucket}, nil
}

func (s *Store) Put(ctx context.Context, key string, entry kv.Entry) error {
	if _, err := s.kv.Put(ctx, key, entry.Data); err != nil {
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (kv.Entry, error) {
	v, err := s.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, jetstream.ErrKeyNotFound) {
			return kv.Entry{}, kv.ErrNotFound
		}
		return kv.Entry{}, fmt.Errorf("get %q: %w", key, err)
	}
	if len(v.Value()) == 0 {
		// Empty sentinel: a deletion marker written where the medium
		// could not remove the record.
		return kv.Entry{}, kv.ErrNotFound
	}
	return kv.Entry{Data: v.Value()}, nil
}

func (s *Store) Delete(ctx context.Context, key string) (bool, error) {
	if _, err := s.Get(ctx, key); errors.Is(err, kv.ErrNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}

	if err := s.kv.Purge(ctx, key); err != nil {
		return false, fmt.Errorf("delete %q: %w", key, err)
	}
	return true, nil
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil, nil
		}
		return nil, err
	}

	// Filter out sentinel records so Keys matches what Get can see.
	out := keys[:0]
	for _, key := range keys {
		if v, err := s.kv.Get(ctx, key); err == nil && len(v.Value()) > 0 {
			out = append(out, key)
		}
	}
	return out, nil
}

func (s *Store) Clear(ctx context.Context) error {
	keys, err := s.kv.Keys(ctx)
	if err != nil {
		if errors.Is(err, jetstream.ErrNoKeysFound) {
			return nil
		}
		return err
	}
	for _, key := range keys {
		if err := s.kv.Purge(ctx, key); err != nil {
			return fmt.Errorf("clear %q: %w", key, err)
		}
	}
	return nil
}

var _ kv.Store = (*Store)(nil)
