// ABOUTME: Main entry point for the Split View API server
// ABOUTME: Loads configuration, wires the services and serves the HTTP API with graceful shutdown

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"splitview-api/api"
	"splitview-api/api/handlers"
	"splitview-api/infrastructure/logger/logrus"
	"splitview-api/internal/app"
	"splitview-api/pkg/config"
	"splitview-api/pkg/featureflags"
)

const version = "1.0.0"

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatalf("Failed to load .env file: %v", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logrus.New(logrus.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		File:   cfg.Log.File,
	})
	defer logger.Close()

	flags := featureflags.NewEnvManager("")
	ctx := context.Background()

	logger.Info("Starting Split View API", map[string]interface{}{
		"port":          cfg.Server.Port,
		"reader_engine": cfg.Reader.Engine,
		"session_store": cfg.Sessions.Store,
	})

	a, err := app.Build(ctx, cfg, flags, logger)
	if err != nil {
		log.Fatalf("Failed to build services: %v", err)
	}
	defer a.Close()

	if flags.IsEnabled(ctx, featureflags.SessionsEnabled) {
		if err := a.WithSessions(cfg); err != nil {
			logger.Error("Failed to open session store, falling back to memory", map[string]interface{}{
				"store": cfg.Sessions.Store,
				"error": err.Error(),
			})
			cfg.Sessions.Store = "memory"
			if err := a.WithSessions(cfg); err != nil {
				log.Fatalf("Failed to open memory session store: %v", err)
			}
		}
	}

	apiConfig := api.APIConfig{Logger: logger}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewHealthHandler(flags, version).RegisterRoutes(humaAPI)
	handlers.NewEmbedHandler(a.Prober).RegisterRoutes(humaAPI)
	handlers.NewReaderHandler(a.Reader).RegisterRoutes(humaAPI)
	handlers.NewViewerHandler(a.Pipeline).RegisterRoutes(humaAPI)

	if flags.IsEnabled(ctx, featureflags.LinkPreviewEnabled) {
		handlers.NewMetadataHandler(a.Metadata).RegisterRoutes(humaAPI)
	}
	if a.Sessions != nil {
		handlers.NewSessionHandler(a.Sessions).RegisterRoutes(humaAPI)
	}
	if a.Metrics != nil {
		router.Handle("/metrics", a.Metrics.Handler())
	}

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Outbound.Timeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}
