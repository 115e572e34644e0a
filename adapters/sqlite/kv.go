// Package sqlite implements the kv.Store port on a local SQLite database,
// giving cache entries that survive process restarts within a single-client
// scope.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/codewandler/fcache-go/ports/kv"
)

type Config struct {
	// Path is the database file, or ":memory:" for an ephemeral store.
	Path string
	// Table defaults to "cache_entries".
	Table string
}

type Store struct {
	db    *sql.DB
	table string
}

// New opens (creating lazily if needed) the database and the cache table.
func New(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("path is required")
	}
	table := cfg.Table
	if table == "" {
		table = "cache_entries"
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Path, err)
	}

	// The sqlite driver is not safe for concurrent writes over multiple
	// connections on one file.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(fmt.Sprintf(
		`CREATE TABLE IF NOT EXISTS %s (key TEXT PRIMARY KEY, data BLOB NOT NULL)`, table,
	)); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create table %s: %w", table, err)
	}

	return &Store{db: db, table: table}, nil
}

func (s *Store) Put(ctx context.Context, key string, entry kv.Entry) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(
		`INSERT INTO %s (key, data) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET data = excluded.data`, s.table,
	), key, entry.Data)
	return err
}

func (s *Store) Get(ctx context.Context, key string) (kv.Entry, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, fmt.Sprintf(
		`SELECT data FROM %s WHERE key = ?`, s.table,
	), key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return kv.Entry{}, kv.ErrNotFound
	}
	if err != nil {
		return kv.Entry{}, err
	}
	if len(data) == 0 {
		// Empty sentinel left by a medium without true deletion.
		return kv.Entry{}, kv.ErrNotFound
	}
	return kv.Entry{Data: data}, nil
}

func (s *Store) Delete(ctx context.Context, key string) (bool, error) {
	res, err := s.db.ExecContext(ctx, fmt.Sprintf(
		`DELETE FROM %s WHERE key = ? AND length(data) > 0`, s.table,
	), key)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, fmt.Sprintf(
		`SELECT key FROM %s WHERE length(data) > 0`, s.table,
	))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, rows.Err()
}

func (s *Store) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s`, s.table))
	return err
}

func (s *Store) Close() error {
	return s.db.Close()
}

var _ kv.Store = (*Store)(nil)
