// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned by Cache.Get when the key is absent or expired
var ErrCacheMiss = errors.New("cache miss")

// Cache defines the interface for cache operations.
// Implementations can be Redis, in-memory, or any other caching solution.
//
// Example usage:
//
//	cache := someCache // implements Cache interface
//
//	// Store a value
//	err := cache.Set(ctx, "session:123", data, 24*time.Hour)
//
//	// Retrieve a value
//	data, err := cache.Get(ctx, "session:123")
//	if errors.Is(err, interfaces.ErrCacheMiss) {
//		// not stored or expired
//	}
//
//	// Delete a value
//	err = cache.Delete(ctx, "session:123")
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns ErrCacheMiss (possibly wrapped) if the key doesn't exist.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}