package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"

	"github.com/seniorconnect/seniorconnect-api/internal/models"
	"github.com/seniorconnect/seniorconnect-api/pkg/logger"
	"github.com/seniorconnect/seniorconnect-api/pkg/metrics"
)

const (
	directoryKey     = "directory:all"
	cacheCheckPeriod = 10 * time.Second
	maxRetries       = 3
	initialRetryWait = 2 * time.Second
)

// DirectoryFetcher loads the full profile collection from the store.
type DirectoryFetcher func(ctx context.Context) ([]*models.SeniorProfile, error)

// DirectoryCache keeps the mentor profile collection in memory so directory
// listings never hit the storage substrate on the request path. It refreshes
// periodically and is invalidated explicitly after registrations.
type DirectoryCache struct {
	cache       *gocache.Cache
	fetch       DirectoryFetcher
	mu          sync.RWMutex
	refreshing  bool
	ready       bool
	ttl         time.Duration
	lastRefresh time.Time
}

// NewDirectoryCache creates a directory cache refreshing every ttlSeconds.
func NewDirectoryCache(fetch DirectoryFetcher, ttlSeconds int) *DirectoryCache {
	return &DirectoryCache{
		cache: gocache.New(gocache.NoExpiration, cacheCheckPeriod),
		fetch: fetch,
		ttl:   time.Duration(ttlSeconds) * time.Second,
	}
}

// Initialize performs the initial population (synchronous, blocks until
// ready). Call during startup before accepting requests.
func (dc *DirectoryCache) Initialize() error {
	logger.Info("Initializing directory cache...")
	startTime := time.Now()

	if err := dc.refreshWithRetry(); err != nil {
		logger.Error("Failed to initialize directory cache", zap.Error(err))
		return err
	}

	dc.mu.Lock()
	dc.ready = true
	dc.lastRefresh = time.Now()
	dc.mu.Unlock()

	logger.Info("Directory cache initialized successfully",
		zap.Duration("duration", time.Since(startTime)))

	go dc.schedulePeriodicRefresh()

	return nil
}

// IsReady returns true once the cache has been populated.
func (dc *DirectoryCache) IsReady() bool {
	dc.mu.RLock()
	defer dc.mu.RUnlock()
	return dc.ready
}

// GetAll returns the cached profile collection. Never blocks on the store.
func (dc *DirectoryCache) GetAll(_ context.Context) ([]*models.SeniorProfile, error) {
	if !dc.IsReady() {
		return nil, fmt.Errorf("directory cache not initialized")
	}

	data, found := dc.cache.Get(directoryKey)
	if !found {
		metrics.CacheMisses.WithLabelValues("directory").Inc()
		return nil, fmt.Errorf("directory not in cache")
	}

	metrics.CacheHits.WithLabelValues("directory").Inc()

	profiles, ok := data.([]*models.SeniorProfile)
	if !ok {
		logger.Error("Invalid directory cache data type")
		dc.cache.Delete(directoryKey)
		return nil, fmt.Errorf("invalid cache data")
	}

	return profiles, nil
}

// Invalidate refreshes the cached collection from the store. Called after a
// successful registration so new mentors appear without waiting for the TTL.
func (dc *DirectoryCache) Invalidate(ctx context.Context) {
	if err := dc.refresh(ctx); err != nil {
		logger.Error("Failed to refresh directory cache after invalidation", zap.Error(err))
	}
}

func (dc *DirectoryCache) schedulePeriodicRefresh() {
	ticker := time.NewTicker(dc.ttl)
	defer ticker.Stop()

	for range ticker.C {
		dc.mu.RLock()
		refreshing := dc.refreshing
		dc.mu.RUnlock()
		if refreshing {
			continue
		}

		if err := dc.refresh(context.Background()); err != nil {
			logger.Error("Periodic directory cache refresh failed", zap.Error(err))
		}
	}
}

func (dc *DirectoryCache) refreshWithRetry() error {
	var err error
	wait := initialRetryWait

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = dc.refresh(context.Background()); err == nil {
			return nil
		}

		logger.Warn("Directory cache refresh failed, retrying",
			zap.Int("attempt", attempt),
			zap.Duration("wait", wait),
			zap.Error(err))
		time.Sleep(wait)
		wait *= 2
	}

	return err
}

func (dc *DirectoryCache) refresh(ctx context.Context) error {
	dc.mu.Lock()
	dc.refreshing = true
	dc.mu.Unlock()

	defer func() {
		dc.mu.Lock()
		dc.refreshing = false
		dc.lastRefresh = time.Now()
		dc.mu.Unlock()
	}()

	profiles, err := dc.fetch(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch profiles: %w", err)
	}

	dc.cache.Set(directoryKey, profiles, gocache.NoExpiration)
	return nil
}
