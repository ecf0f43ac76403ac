package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a KV driver over a shared redis instance.
type Redis struct {
	client *redis.Client
}

// NewRedis connects to redis with short timeouts.
func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &Redis{client: client}
}

func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	start := time.Now()

	value, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		recordOp("redis", "get", "miss", start)
		return nil, ErrKeyNotFound
	}
	if err != nil {
		recordOp("redis", "get", "error", start)
		return nil, fmt.Errorf("failed to read key %q: %w", key, err)
	}

	recordOp("redis", "get", "success", start)
	return value, nil
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	start := time.Now()

	// No expiration: the collections live until overwritten
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		recordOp("redis", "set", "error", start)
		return fmt.Errorf("failed to write key %q: %w", key, err)
	}

	recordOp("redis", "set", "success", start)
	return nil
}

func (r *Redis) Delete(ctx context.Context, key string) error {
	start := time.Now()

	if err := r.client.Del(ctx, key).Err(); err != nil {
		recordOp("redis", "delete", "error", start)
		return fmt.Errorf("failed to delete key %q: %w", key, err)
	}

	recordOp("redis", "delete", "success", start)
	return nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
