// ABOUTME: Rate limiting middleware for API endpoints
// ABOUTME: Implements per-IP token buckets with golang.org/x/time/rate

package middleware

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const idleVisitorTTL = 10 * time.Minute

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP
type RateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	now      func() time.Time
}

// NewRateLimiter allows rps requests per second per IP with the given burst.
// A burst below one is raised to the ceiling of rps.
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	if burst < 1 {
		burst = int(math.Ceil(rps))
		if burst < 1 {
			burst = 1
		}
	}
	return &RateLimiter{
		visitors: make(map[string]*visitor),
		limit:    rate.Limit(rps),
		burst:    burst,
		now:      time.Now,
	}
}

// Allow checks if a request from the given key is allowed
func (rl *RateLimiter) Allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	v, ok := rl.visitors[key]
	if !ok {
		rl.evictIdle(now)
		v = &visitor{limiter: rate.NewLimiter(rl.limit, rl.burst), lastSeen: now}
		rl.visitors[key] = v
	}
	v.lastSeen = now

	return v.limiter.AllowN(now, 1)
}

// evictIdle drops visitors not seen for a while. Caller holds mu.
func (rl *RateLimiter) evictIdle(now time.Time) {
	for key, v := range rl.visitors {
		if now.Sub(v.lastSeen) > idleVisitorTTL {
			delete(rl.visitors, key)
		}
	}
}

// retryAfter is the whole number of seconds until one token is available
func (rl *RateLimiter) retryAfter() int {
	if rl.limit <= 0 {
		return 1
	}
	secs := int(math.Ceil(1 / float64(rl.limit)))
	if secs < 1 {
		secs = 1
	}
	return secs
}

// extractIP gets the client IP from the request
func extractIP(r *http.Request) string {
	// The last X-Forwarded-For hop is the one added by our own proxy
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		if ip := strings.TrimSpace(parts[len(parts)-1]); ip != "" {
			return ip
		}
	}

	if xri := strings.TrimSpace(r.Header.Get("X-Real-IP")); xri != "" {
		return xri
	}

	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}

// RateLimitMiddleware creates a middleware that enforces rate limits
func RateLimitMiddleware(limiter *RateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%g", float64(limiter.limit)))
			w.Header().Set("X-RateLimit-Burst", fmt.Sprintf("%d", limiter.burst))

			if !limiter.Allow(extractIP(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Retry-After", fmt.Sprintf("%d", limiter.retryAfter()))
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"Too many requests","message":"Rate limit exceeded. Please try again later."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
