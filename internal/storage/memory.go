package storage

import (
	"context"
	"sync"
	"time"
)

// Memory is an in-process KV for tests and ephemeral development runs.
type Memory struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	start := time.Now()

	m.mu.RLock()
	value, ok := m.data[key]
	m.mu.RUnlock()

	if !ok {
		recordOp("memory", "get", "miss", start)
		return nil, ErrKeyNotFound
	}

	// Copy so callers cannot mutate the stored value
	out := make([]byte, len(value))
	copy(out, value)

	recordOp("memory", "get", "success", start)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	start := time.Now()

	stored := make([]byte, len(value))
	copy(stored, value)

	m.mu.Lock()
	m.data[key] = stored
	m.mu.Unlock()

	recordOp("memory", "set", "success", start)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	start := time.Now()

	m.mu.Lock()
	delete(m.data, key)
	m.mu.Unlock()

	recordOp("memory", "delete", "success", start)
	return nil
}

func (m *Memory) Ping(_ context.Context) error {
	return nil
}

func (m *Memory) Close() error {
	return nil
}
