package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/seniorconnect/seniorconnect-api/config"
	"github.com/seniorconnect/seniorconnect-api/pkg/db"
)

// Postgres is the production KV driver, backed by the kv_store table
// (created by cmd/migrate).
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects a pgx pool and verifies the connection.
func NewPostgres(ctx context.Context, cfg config.StorageConfig) (*Postgres, error) {
	pool, err := db.NewPool(ctx, db.PoolConfig{
		URL:      cfg.DatabaseURL,
		MaxConns: cfg.MaxConns,
		MinConns: cfg.MinConns,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize postgres pool: %w", err)
	}

	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()

	var value []byte
	err := p.pool.QueryRow(ctx,
		`SELECT value FROM kv_store WHERE key = $1`, key,
	).Scan(&value)

	if errors.Is(err, pgx.ErrNoRows) {
		recordOp("postgres", "get", "miss", start)
		return nil, ErrKeyNotFound
	}
	if err != nil {
		recordOp("postgres", "get", "error", start)
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	recordOp("postgres", "get", "success", start)
	return value, nil
}

func (p *Postgres) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()

	_, err := p.pool.Exec(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES ($1, $2, now())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		key, value,
	)
	if err != nil {
		recordOp("postgres", "set", "error", start)
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	recordOp("postgres", "set", "success", start)
	return nil
}

func (p *Postgres) Delete(ctx context.Context, key string) error {
	start := time.Now()

	_, err := p.pool.Exec(ctx, `DELETE FROM kv_store WHERE key = $1`, key)
	if err != nil {
		recordOp("postgres", "delete", "error", start)
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	recordOp("postgres", "delete", "success", start)
	return nil
}

func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}
