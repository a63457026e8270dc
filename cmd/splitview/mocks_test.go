package main_test

import (
	"context"

	"splitview-api/core/domain"
)

type mockViewer struct {
	resolveFunc func(ctx context.Context, rawURL, hint string) (domain.ViewerDecision, error)
}

func (m *mockViewer) Resolve(ctx context.Context, rawURL, hint string) (domain.ViewerDecision, error) {
	return m.resolveFunc(ctx, rawURL, hint)
}

type mockProber struct {
	probeFunc func(ctx context.Context, url string) domain.EmbedDecision
}

func (m *mockProber) Probe(ctx context.Context, url string) domain.EmbedDecision {
	return m.probeFunc(ctx, url)
}

type mockReader struct {
	extractFunc func(ctx context.Context, url string) (*domain.Article, error)
}

func (m *mockReader) Extract(ctx context.Context, url string) (*domain.Article, error) {
	return m.extractFunc(ctx, url)
}

type mockMetadata struct {
	previews map[string]domain.LinkPreview
}

func (m *mockMetadata) Preview(ctx context.Context, url string) domain.LinkPreview {
	return m.previews[url]
}

func (m *mockMetadata) PreviewBatch(ctx context.Context, urls []string) map[string]domain.LinkPreview {
	out := make(map[string]domain.LinkPreview, len(urls))
	for _, u := range urls {
		out[u] = m.previews[u]
	}
	return out
}
