// Package storage provides the synchronous get/set-by-key substrate that
// backs the profile and favorite collections. Each key holds a wholesale
// serialized collection; there are no partial updates and no atomicity
// guarantee beyond a single key. Concurrent writers from separate processes
// can race on a key and the last write wins silently; the repositories
// serialize read-modify-write cycles within this process only.
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/seniorconnect/seniorconnect-api/config"
	"github.com/seniorconnect/seniorconnect-api/pkg/logger"
	"github.com/seniorconnect/seniorconnect-api/pkg/metrics"
)

// ErrKeyNotFound is returned by Get for keys that were never set.
var ErrKeyNotFound = errors.New("key not found")

// KV is a synchronous key-value store.
type KV interface {
	// Get returns the value for key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error

	// Ping verifies the substrate is reachable.
	Ping(ctx context.Context) error

	// Close releases underlying resources.
	Close() error
}

// New constructs the KV driver selected by cfg.Driver.
func New(ctx context.Context, cfg config.StorageConfig) (KV, error) {
	switch cfg.Driver {
	case "memory":
		return NewMemory(), nil
	case "sqlite":
		return NewSQLite(cfg.SQLitePath)
	case "postgres":
		return NewPostgres(ctx, cfg)
	case "redis":
		return NewRedis(cfg.RedisAddr), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

// recordOp records metrics and a debug log line for a driver operation.
func recordOp(driver, operation, status string, start time.Time) {
	duration := metrics.MeasureDuration(start)
	metrics.StorageOpDuration.WithLabelValues(driver, operation, status).Observe(duration)
	metrics.StorageOpTotal.WithLabelValues(driver, operation, status).Inc()
	logger.LogStorageOp(driver, operation, status, duration)
}
