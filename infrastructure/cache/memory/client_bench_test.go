package memory

import (
	"bytes"
	"context"
	"fmt"
	"testing"
	"time"
)

// sessionPayload approximates an encoded session with a short history
var sessionPayload = bytes.Repeat([]byte(`{"url":"https://example.com/a","type":"iframe","readerMode":false},`), 20)

func BenchmarkMemoryCache_Get(b *testing.B) {
	cache := NewMemoryCache(0)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		_ = cache.Set(ctx, fmt.Sprintf("session:%d", i), sessionPayload, time.Hour)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = cache.Get(ctx, fmt.Sprintf("session:%d", i%1000))
	}
}

func BenchmarkMemoryCache_SetParallel(b *testing.B) {
	cache := NewMemoryCache(0)
	ctx := context.Background()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			_ = cache.Set(ctx, fmt.Sprintf("session:%d", i%1000), sessionPayload, time.Hour)
			i++
		}
	})
}
