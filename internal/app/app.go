// ABOUTME: Builds the service graph shared by the API server and the CLI
// ABOUTME: Turns configuration and feature flags into wired core services

package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"splitview-api/api/middleware"
	"splitview-api/core/embed"
	"splitview-api/core/interfaces"
	"splitview-api/core/reader"
	"splitview-api/core/resolve"
	"splitview-api/core/services"
	"splitview-api/core/viewer"
	"splitview-api/infrastructure/cache/memory"
	"splitview-api/infrastructure/cache/redis"
	"splitview-api/infrastructure/cache/sqlite"
	stdhttp "splitview-api/infrastructure/http/standard"
	"splitview-api/infrastructure/metrics"
	"splitview-api/infrastructure/storage"
	"splitview-api/pkg/config"
	"splitview-api/pkg/featureflags"
)

const memoryCleanupInterval = 10 * time.Minute

// App holds the wired services
type App struct {
	Deps       interfaces.Dependencies
	HTTPClient *stdhttp.StandardHTTPClient
	Classifier *resolve.Classifier
	Prober     *embed.Prober
	Pipeline   *viewer.Pipeline
	Reader     *reader.Service
	Metadata   *services.MetadataService

	// Sessions is nil until WithSessions is called
	Sessions *viewer.SessionService

	// Metrics is nil when the metrics flag is off
	Metrics *metrics.Recorder

	closers []io.Closer
}

// Build wires every stateless service. Session storage is opened separately
// because only the server needs it.
func Build(ctx context.Context, cfg *config.Config, flags featureflags.Manager, logger interfaces.Logger) (*App, error) {
	a := &App{}

	a.HTTPClient = stdhttp.NewStandardHTTPClient(stdhttp.Options{
		Timeout:              cfg.Outbound.Timeout,
		UserAgent:            cfg.Outbound.UserAgent,
		AllowPrivateNetworks: cfg.Outbound.AllowPrivateNetworks,
	})

	var recorder interfaces.Metrics = interfaces.NoopMetrics{}
	if flags.IsEnabled(ctx, featureflags.MetricsEnabled) {
		a.Metrics = metrics.NewRecorder()
		recorder = a.Metrics
	}

	a.Deps = interfaces.Dependencies{
		HTTPClient: a.HTTPClient,
		Logger:     logger,
		Metrics:    recorder,
	}

	a.Classifier = resolve.NewClassifier(mergeHosts(resolve.DefaultHosts(), cfg.Hosts))

	a.Prober = embed.NewProber(a.Deps, embed.Config{
		PublicOrigin: cfg.Server.PublicOrigin,
		Timeout:      cfg.Outbound.ProbeTimeout,
	})

	a.Pipeline = viewer.NewPipeline(a.Classifier, a.Prober, logger)

	readerService, err := reader.NewService(a.Deps, reader.Config{
		Engine:          cfg.Reader.Engine,
		MinChars:        cfg.Reader.MinChars,
		MaxBodyBytes:    cfg.Outbound.MaxBodyBytes,
		Timeout:         cfg.Outbound.Timeout,
		PreserveClasses: cfg.Reader.PreserveClasses,
		Fallback:        flags.IsEnabled(ctx, featureflags.ReaderFallback),
		Markdown:        flags.IsEnabled(ctx, featureflags.MarkdownOutput),
	})
	if err != nil {
		return nil, fmt.Errorf("create reader service: %w", err)
	}
	a.Reader = readerService

	a.Metadata = services.NewMetadataService(a.Deps, services.MetadataConfig{
		UserAgent:   a.HTTPClient.UserAgent(),
		Timeout:     cfg.Outbound.Timeout,
		MaxBodySize: int(cfg.Outbound.MaxBodyBytes),
		Transport: &middleware.LoggingRoundTripper{
			Transport: a.HTTPClient.Transport(),
			Logger:    logger,
		},
	})

	return a, nil
}

// WithSessions opens the configured session store and creates the session service
func (a *App) WithSessions(cfg *config.Config) error {
	cache, err := a.openCache(cfg)
	if err != nil {
		return err
	}

	a.Deps.Cache = cache
	a.Sessions = viewer.NewSessionService(storage.NewSessionStore(cache), a.Pipeline, cfg.Sessions.TTL)
	return nil
}

func (a *App) openCache(cfg *config.Config) (interfaces.Cache, error) {
	switch cfg.Sessions.Store {
	case "redis":
		c, err := redis.NewRedisCache(cfg.Sessions.Redis)
		if err != nil {
			return nil, fmt.Errorf("connect to redis at %s: %w", cfg.Sessions.Redis.Address, err)
		}
		a.closers = append(a.closers, c)
		return c, nil

	case "sqlite":
		c, err := sqlite.NewSQLiteCache(cfg.Sessions.SQLitePath, a.Deps.Logger)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store at %s: %w", cfg.Sessions.SQLitePath, err)
		}
		a.closers = append(a.closers, c)
		return c, nil

	default:
		return memory.NewMemoryCache(memoryCleanupInterval), nil
	}
}

// Close releases session storage connections
func (a *App) Close() error {
	var firstErr error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

func mergeHosts(base resolve.Hosts, extra config.HostsConfig) resolve.Hosts {
	return resolve.Hosts{
		Video:    append(base.Video, extra.Video...),
		Document: append(base.Document, extra.Document...),
		Sandbox:  append(base.Sandbox, extra.Sandbox...),
	}
}
