// ABOUTME: In-memory cache implementation backed by patrickmn/go-cache
// ABOUTME: Holds viewer sessions for single-instance deployments with TTL and janitor cleanup

package memory

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"splitview-api/core/interfaces"
)

const defaultCleanupInterval = 10 * time.Minute

// MemoryCache implements the Cache interface using in-memory storage
type MemoryCache struct {
	items *gocache.Cache
}

// NewMemoryCache creates a new in-memory cache instance. Expired items are
// purged every cleanupInterval; zero uses the default.
func NewMemoryCache(cleanupInterval time.Duration) *MemoryCache {
	if cleanupInterval <= 0 {
		cleanupInterval = defaultCleanupInterval
	}
	return &MemoryCache{
		items: gocache.New(gocache.NoExpiration, cleanupInterval),
	}
}

// Get retrieves a value from the cache
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	value, ok := c.items.Get(key)
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}

	stored := value.([]byte)
	result := make([]byte, len(stored))
	copy(result, stored)
	return result, nil
}

// Set stores a value in the cache with the given TTL. A zero TTL never expires.
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	valueCopy := make([]byte, len(value))
	copy(valueCopy, value)

	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	c.items.Set(key, valueCopy, ttl)

	return nil
}

// Delete removes a key from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.items.Delete(key)
	return nil
}

// Len returns the number of stored items, including expired ones not yet purged
func (c *MemoryCache) Len() int {
	return c.items.ItemCount()
}
