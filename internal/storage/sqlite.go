package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Register the cgo-free sqlite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS kv_store (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// SQLite is an embedded single-file KV, the default for local development.
type SQLite struct {
	db *sql.DB
}

// NewSQLite opens (and if needed creates) the database file at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// A single writer avoids SQLITE_BUSY on concurrent requests
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close() //nolint:errcheck
		return nil, fmt.Errorf("failed to create kv_store table: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()

	var value []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM kv_store WHERE key = ?`, key,
	).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		recordOp("sqlite", "get", "miss", start)
		return nil, ErrKeyNotFound
	}
	if err != nil {
		recordOp("sqlite", "get", "error", start)
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	recordOp("sqlite", "get", "success", start)
	return value, nil
}

func (s *SQLite) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UnixMilli(),
	)
	if err != nil {
		recordOp("sqlite", "set", "error", start)
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	recordOp("sqlite", "set", "success", start)
	return nil
}

func (s *SQLite) Delete(ctx context.Context, key string) error {
	start := time.Now()

	_, err := s.db.ExecContext(ctx, `DELETE FROM kv_store WHERE key = ?`, key)
	if err != nil {
		recordOp("sqlite", "delete", "error", start)
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	recordOp("sqlite", "delete", "success", start)
	return nil
}

func (s *SQLite) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
