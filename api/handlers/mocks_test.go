package handlers

import (
	"context"
	"sync"

	"splitview-api/core/domain"
)

// mockProber is a mock implementation of the EmbedProber interface
type mockProber struct {
	mu        sync.Mutex
	calls     []string
	probeFunc func(ctx context.Context, url string) domain.EmbedDecision
}

func (m *mockProber) Probe(ctx context.Context, url string) domain.EmbedDecision {
	m.mu.Lock()
	m.calls = append(m.calls, url)
	m.mu.Unlock()

	if m.probeFunc != nil {
		return m.probeFunc(ctx, url)
	}
	return domain.EmbedDecision{URL: url, CanEmbed: domain.EmbedAllowed, Reason: "No blocking headers found"}
}

// mockExtractor is a mock implementation of the ArticleExtractor interface
type mockExtractor struct {
	extractFunc func(ctx context.Context, url string) (*domain.Article, error)
}

func (m *mockExtractor) Extract(ctx context.Context, url string) (*domain.Article, error) {
	return m.extractFunc(ctx, url)
}

// mockResolver is a mock implementation of the ViewerResolver interface
type mockResolver struct {
	resolveFunc func(ctx context.Context, rawURL, hint string) (domain.ViewerDecision, error)
}

func (m *mockResolver) Resolve(ctx context.Context, rawURL, hint string) (domain.ViewerDecision, error) {
	return m.resolveFunc(ctx, rawURL, hint)
}

// mockMetadata is a mock implementation of the MetadataService interface
type mockMetadata struct {
	previewFunc func(ctx context.Context, url string) domain.LinkPreview
}

func (m *mockMetadata) Preview(ctx context.Context, url string) domain.LinkPreview {
	return m.previewFunc(ctx, url)
}

func (m *mockMetadata) PreviewBatch(ctx context.Context, urls []string) map[string]domain.LinkPreview {
	out := make(map[string]domain.LinkPreview, len(urls))
	for _, u := range urls {
		out[u] = m.previewFunc(ctx, u)
	}
	return out
}

// mockSessions is a mock implementation of the SessionManager interface
type mockSessions struct {
	createFunc   func(ctx context.Context) (*domain.Session, error)
	getFunc      func(ctx context.Context, id string) (*domain.Session, error)
	openFunc     func(ctx context.Context, id, rawURL, hint string) (*domain.Session, domain.ViewerDecision, error)
	openTextFunc func(ctx context.Context, id, content, title string) (*domain.Session, error)
	navFunc      func(ctx context.Context, op, id string) (*domain.Session, error)
	closeFunc    func(ctx context.Context, id string) error
}

func (m *mockSessions) Create(ctx context.Context) (*domain.Session, error) {
	return m.createFunc(ctx)
}

func (m *mockSessions) Get(ctx context.Context, id string) (*domain.Session, error) {
	return m.getFunc(ctx, id)
}

func (m *mockSessions) Open(ctx context.Context, id, rawURL, hint string) (*domain.Session, domain.ViewerDecision, error) {
	return m.openFunc(ctx, id, rawURL, hint)
}

func (m *mockSessions) OpenText(ctx context.Context, id, content, title string) (*domain.Session, error) {
	return m.openTextFunc(ctx, id, content, title)
}

func (m *mockSessions) Back(ctx context.Context, id string) (*domain.Session, error) {
	return m.navFunc(ctx, "back", id)
}

func (m *mockSessions) Forward(ctx context.Context, id string) (*domain.Session, error) {
	return m.navFunc(ctx, "forward", id)
}

func (m *mockSessions) SwitchToReaderMode(ctx context.Context, id string) (*domain.Session, error) {
	return m.navFunc(ctx, "reader", id)
}

func (m *mockSessions) Close(ctx context.Context, id string) error {
	return m.closeFunc(ctx, id)
}
