// Package memory provides an in-process cache repository used in tests
// and when Redis is disabled
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/platewise/platewise/internal/infrastructure/persistence/redis"
	"github.com/platewise/platewise/internal/ports/outbound"
)

type entry struct {
	data      []byte
	expiresAt time.Time
}

// CacheRepository is a map-backed cache with TTL semantics
type CacheRepository struct {
	mu       sync.RWMutex
	items    map[string]entry
	counters map[string]int64
}

// NewCacheRepository creates an empty in-memory cache
func NewCacheRepository() outbound.CacheRepository {
	return &CacheRepository{
		items:    make(map[string]entry),
		counters: make(map[string]int64),
	}
}

// Get retrieves a value, honoring expiry
func (r *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	r.mu.RLock()
	e, ok := r.items[key]
	r.mu.RUnlock()

	if !ok || (!e.expiresAt.IsZero() && time.Now().After(e.expiresAt)) {
		return nil, redis.ErrCacheMiss
	}
	return e.data, nil
}

// Set stores a value with TTL
func (r *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}

	r.mu.Lock()
	r.items[key] = entry{data: value, expiresAt: expiresAt}
	r.mu.Unlock()
	return nil
}

// Delete removes a value
func (r *CacheRepository) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	delete(r.items, key)
	r.mu.Unlock()
	return nil
}

// Exists checks if a key exists and is unexpired
func (r *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	_, err := r.Get(ctx, key)
	if err != nil {
		return false, nil
	}
	return true, nil
}

// Increment atomically increments a counter
func (r *CacheRepository) Increment(ctx context.Context, key string) (int64, error) {
	r.mu.Lock()
	r.counters[key]++
	v := r.counters[key]
	r.mu.Unlock()
	return v, nil
}
