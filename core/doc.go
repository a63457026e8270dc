// Package core contains the business logic for the Split View API.
// It is framework-agnostic and can be used without any web framework
// or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Pure domain models (ResolvedTarget, EmbedDecision, Article, History, Session)
// - resolve: URL unwrapping and host classification, no network I/O
// - embed: Embeddability probing from X-Frame-Options and CSP frame-ancestors
// - extract: Reader engines behind a common interface
// - fallback: Site-specific extractors tried when the engine comes up short
// - postprocess: Per-site cleanup of extracted HTML
// - reader: The extraction service tying fetch, engine, fallbacks and sanitizing together
// - viewer: The presentation pipeline and session navigation
// - services: Link previews
// - errors: Custom error types mapped to HTTP statuses by the API layer
// - interfaces: Contracts for external dependencies (cache, HTTP, logger, metrics)
//
// # Usage Example
//
//	deps := interfaces.Dependencies{
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	prober := embed.NewProber(deps, embed.Config{PublicOrigin: "https://viewer.example.com"})
//	pipeline := viewer.NewPipeline(resolve.NewClassifier(resolve.DefaultHosts()), prober, myLogger)
//
//	decision, err := pipeline.Resolve(ctx, "https://www.google.com/url?q=https://example.com", "")
package core
