// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for resolution, probing, extraction and link previews

package interfaces

import (
	"context"

	"splitview-api/core/domain"
)

// Resolver unwraps and classifies a URL without network I/O
type Resolver interface {
	Resolve(rawURL string) domain.ResolvedTarget
}

// EmbedProber decides whether a remote page can be framed.
// Probe never fails: network problems surface as EmbedUnknown.
type EmbedProber interface {
	Probe(ctx context.Context, url string) domain.EmbedDecision
}

// ArticleExtractor turns a URL into a reader-mode article
type ArticleExtractor interface {
	Extract(ctx context.Context, url string) (*domain.Article, error)
}

// MetadataService builds link previews for web pages
type MetadataService interface {
	Preview(ctx context.Context, url string) domain.LinkPreview
	PreviewBatch(ctx context.Context, urls []string) map[string]domain.LinkPreview
}

// ViewerResolver turns a URL and an optional hint into a viewer decision
type ViewerResolver interface {
	Resolve(ctx context.Context, rawURL, hint string) (domain.ViewerDecision, error)
}

// SessionManager owns the navigation history of viewer sessions
type SessionManager interface {
	Create(ctx context.Context) (*domain.Session, error)
	Get(ctx context.Context, id string) (*domain.Session, error)
	Open(ctx context.Context, id, rawURL, hint string) (*domain.Session, domain.ViewerDecision, error)
	OpenText(ctx context.Context, id, content, title string) (*domain.Session, error)
	Back(ctx context.Context, id string) (*domain.Session, error)
	Forward(ctx context.Context, id string) (*domain.Session, error)
	SwitchToReaderMode(ctx context.Context, id string) (*domain.Session, error)
	Close(ctx context.Context, id string) error
}
