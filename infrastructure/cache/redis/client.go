// ABOUTME: Redis cache implementation using go-redis client
// ABOUTME: Shares viewer sessions across API instances with TTL support and connection pooling

package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"splitview-api/core/interfaces"
	"splitview-api/pkg/config"
)

const pingTimeout = 5 * time.Second

// RedisCache implements the Cache interface using Redis
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache connects to Redis and verifies the connection
func NewRedisCache(cfg config.RedisConfig) (*RedisCache, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Address, err)
	}

	return &RedisCache{client: client}, nil
}

// Get retrieves a value from Redis
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, interfaces.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return val, nil
}

// Set stores a value in Redis with the given TTL. Zero TTL means no expiration.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis. Deleting a missing key is not an error.
func (c *RedisCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// Ping reports whether Redis is reachable
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
