// ABOUTME: Request logging middleware for API endpoints
// ABOUTME: Logs request details, response status, and timing information

package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"splitview-api/core/interfaces"
)

const (
	requestIDHeader      = "X-Request-ID"
	maxRequestIDLength   = 64
	slowRequestThreshold = 5 * time.Second
)

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func (rw *responseWriter) WriteHeader(code int) {
	if !rw.written {
		rw.statusCode = code
		rw.ResponseWriter.WriteHeader(code)
		rw.written = true
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// RequestIDKey is the context key for request ID
type RequestIDKey struct{}

// RequestIDFromContext returns the request ID stored by the logging middleware
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey{}).(string)
	return id
}

// RequestLoggingMiddleware creates a middleware that logs all requests.
// A caller supplied X-Request-ID is reused; otherwise a UUID is generated.
func RequestLoggingMiddleware(logger interfaces.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(requestIDHeader)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				requestID = uuid.New().String()
				r.Header.Set(requestIDHeader, requestID)
			}
			w.Header().Set(requestIDHeader, requestID)

			r = r.WithContext(context.WithValue(r.Context(), RequestIDKey{}, requestID))

			start := time.Now()
			wrapped := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			logger.Info("Request started", RequestLogFields(r))

			next.ServeHTTP(wrapped, r)

			duration := time.Since(start)

			fields := ResponseLogFields(wrapped.statusCode, duration)
			fields["request_id"] = requestID
			fields["method"] = r.Method
			fields["path"] = r.URL.Path
			logger.Info("Request completed", fields)

			if duration > slowRequestThreshold {
				logger.Warn("Slow request detected", map[string]interface{}{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"duration":   duration.String(),
				})
			}

			if wrapped.statusCode >= 500 {
				logger.Error("Request failed with server error", map[string]interface{}{
					"request_id": requestID,
					"method":     r.Method,
					"path":       r.URL.Path,
					"status":     wrapped.statusCode,
				})
			}
		})
	}
}

// GetRequestID retrieves the request ID from the request headers
func GetRequestID(r *http.Request) string {
	return r.Header.Get(requestIDHeader)
}

// LoggingRoundTripper logs outbound requests at debug level
type LoggingRoundTripper struct {
	Transport http.RoundTripper
	Logger    interfaces.Logger
}

// RoundTrip logs outgoing HTTP requests
func (t *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	transport := t.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}

	requestID := RequestIDFromContext(req.Context())

	t.Logger.Debug("Outgoing HTTP request", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
	})

	resp, err := transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		t.Logger.Warn("Outgoing HTTP request failed", map[string]interface{}{
			"request_id": requestID,
			"method":     req.Method,
			"url":        req.URL.String(),
			"duration":   duration.String(),
			"error":      err.Error(),
		})
		return nil, err
	}

	t.Logger.Debug("Outgoing HTTP response", map[string]interface{}{
		"request_id": requestID,
		"method":     req.Method,
		"url":        req.URL.String(),
		"status":     resp.StatusCode,
		"duration":   duration.String(),
	})

	return resp, nil
}

// RequestLogFields extracts common log fields from a request
func RequestLogFields(r *http.Request) map[string]interface{} {
	return map[string]interface{}{
		"method":       r.Method,
		"path":         r.URL.Path,
		"query":        r.URL.RawQuery,
		"remote_ip":    extractIP(r),
		"user_agent":   r.UserAgent(),
		"request_id":   GetRequestID(r),
		"host":         r.Host,
		"proto":        r.Proto,
		"content_type": r.Header.Get("Content-Type"),
	}
}

// ResponseLogFields creates log fields for a response
func ResponseLogFields(statusCode int, duration time.Duration) map[string]interface{} {
	return map[string]interface{}{
		"status":      statusCode,
		"duration":    duration.String(),
		"duration_ms": duration.Milliseconds(),
		"status_text": fmt.Sprintf("%d %s", statusCode, http.StatusText(statusCode)),
	}
}
