// Command fetchget fetches a URL through the cache and prints the payload.
//
// The backing store is chosen via environment:
//
//	CACHE_BACKEND=memory|sqlite|nats   (default memory)
//	CACHE_TTL=10m                      (default 1h)
//	CACHE_DB=fetchget.db               (sqlite backend)
//	CACHE_BUCKET=fetchget              (nats backend, honors NATS_URL)
//	CACHE_FORCE=true                   (bypass a fresh entry)
//
// With a durable backend, running the command twice inside the TTL performs
// a single network fetch.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"

	natsadapter "github.com/codewandler/fcache-go/adapters/nats"
	sqliteadapter "github.com/codewandler/fcache-go/adapters/sqlite"
	"github.com/codewandler/fcache-go/core/fetchcache"
	"github.com/codewandler/fcache-go/ports/kv"
)

type config struct {
	Backend string        `env:"CACHE_BACKEND" envDefault:"memory"`
	TTL     time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	DBPath  string        `env:"CACHE_DB" envDefault:"fetchget.db"`
	Bucket  string        `env:"CACHE_BUCKET" envDefault:"fetchget"`
	Force   bool          `env:"CACHE_FORCE"`
}

func newStore(ctx context.Context, cfg config) (kv.Store, error) {
	switch cfg.Backend {
	case "memory":
		return kv.NewMemStore(), nil
	case "sqlite":
		store, err := sqliteadapter.New(sqliteadapter.Config{Path: cfg.DBPath})
		if err != nil {
			return nil, err
		}
		return store, nil
	case "nats":
		store, err := natsadapter.New(ctx, natsadapter.Config{Bucket: cfg.Bucket})
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

func run() error {
	if len(os.Args) != 2 {
		return fmt.Errorf("usage: %s <url>", os.Args[0])
	}
	url := os.Args[1]

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	ctx := context.Background()

	store, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}

	cache := fetchcache.New[json.RawMessage](fetchcache.Config{
		Store:  store,
		TTL:    cfg.TTL,
		Family: cfg.Backend,
	})
	defer cache.Close()

	var opts []fetchcache.FetchOption
	if cfg.Force {
		opts = append(opts, fetchcache.WithForce())
	}

	payload, err := cache.Fetch(ctx, url, opts...)
	if err != nil {
		return err
	}

	_, err = os.Stdout.Write(append(payload, '\n'))
	return err
}

func main() {
	if err := run(); err != nil {
		slog.Error("fetchget failed", slog.Any("error", err))
		os.Exit(1)
	}
}
