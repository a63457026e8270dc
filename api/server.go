// ABOUTME: Huma API server configuration and setup
// ABOUTME: Provides OpenAPI documentation and request/response validation

package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"splitview-api/api/middleware"
	"splitview-api/core/interfaces"
)

const (
	apiTitle   = "Split View API"
	apiVersion = "1.0.0"
)

// APIConfig holds configuration for the API
type APIConfig struct {
	Logger interfaces.Logger

	// RateLimit is requests per second per client IP; zero disables limiting
	RateLimit float64
	Burst     int

	// AllowedOrigins defaults to every origin
	AllowedOrigins []string
}

// NewAPI creates and configures a new Huma API instance
func NewAPI() (huma.API, chi.Router) {
	return NewAPIWithMiddleware(APIConfig{})
}

// NewAPIWithMiddleware creates a new API with middleware configured
func NewAPIWithMiddleware(cfg APIConfig) (huma.API, chi.Router) {
	router := chi.NewRouter()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	// CORS runs first so preflight requests are never rate limited
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	if cfg.Logger != nil {
		router.Use(middleware.RequestLoggingMiddleware(cfg.Logger))
	}

	if cfg.RateLimit > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit, cfg.Burst)
		router.Use(middleware.RateLimitMiddleware(limiter))
	}

	config := huma.DefaultConfig(apiTitle, apiVersion)
	config.Info.Description = "Resolves URLs for the split-screen study viewer: embeddability checks, reader-mode extraction, link previews and navigation sessions"

	api := humachi.New(router, config)

	// The OpenAPI spec is served at /openapi.json and the docs UI at /docs
	return api, router
}
