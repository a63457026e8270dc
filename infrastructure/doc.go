// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package.
//
// - cache/memory: In-memory cache backed by go-cache
// - cache/redis: Redis-backed cache
// - cache/sqlite: SQLite-backed cache for single-node persistence
// - storage: Session storage on top of any cache
// - http/standard: Outbound HTTP client with a private network dial guard
// - logger/logrus: Structured logger with optional rotating files
// - metrics: Prometheus recorder
//
// # Cache Implementations
//
//	cache := memory.NewMemoryCache(10 * time.Minute)
//	err := cache.Set(ctx, "key", []byte("value"), time.Hour)
//	value, err := cache.Get(ctx, "key")
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{Address: "localhost:6379"})
//
// # HTTP Client
//
// The client never retries and refuses private addresses unless told otherwise:
//
//	client := standard.NewStandardHTTPClient(standard.Options{Timeout: 15 * time.Second})
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
//	logger := logrus.New(logrus.Options{Level: "info", Format: "json"})
//	logger.Info("Probed page", map[string]interface{}{
//	    "url":       "https://example.com",
//	    "can_embed": "allowed",
//	})
package infrastructure
