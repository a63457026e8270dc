package reader

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"splitview-api/core/extract"
	"splitview-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: http.StatusOK}, nil
}

func (m *mockHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	return &mockResponse{statusCode: http.StatusOK}, nil
}

// pageClient serves body with a 200 for every URL
func pageClient(body string) *mockHTTPClient {
	return &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: http.StatusOK, body: body}, nil
		},
	}
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    http.Header
	finalURL   string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return m.headers.Get(key)
}

func (m *mockResponse) HeaderValues(key string) []string {
	return m.headers.Values(key)
}

func (m *mockResponse) FinalURL() string {
	return m.finalURL
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

// mockEngine is a function-field Engine
type mockEngine struct {
	extractFunc func(doc *html.Node, pageURL *url.URL) (*extract.Result, error)
}

func (m *mockEngine) Name() string {
	return "mock"
}

func (m *mockEngine) Extract(doc *html.Node, pageURL *url.URL) (*extract.Result, error) {
	return m.extractFunc(doc, pageURL)
}

// mockFallback is a function-field fallback Extractor
type mockFallback struct {
	extractFunc func(doc *html.Node, pageURL *url.URL) (*extract.Result, bool)
}

func (m *mockFallback) Name() string {
	return "mock-fallback"
}

func (m *mockFallback) Extract(doc *html.Node, pageURL *url.URL) (*extract.Result, bool) {
	return m.extractFunc(doc, pageURL)
}

// recordingMetrics counts outcomes
type recordingMetrics struct {
	outcomes  []string
	fallbacks []string
}

func (m *recordingMetrics) ProbeResult(status string) {}

func (m *recordingMetrics) ExtractResult(engine, outcome string, elapsed time.Duration) {
	m.outcomes = append(m.outcomes, outcome)
}

func (m *recordingMetrics) FallbackUsed(name string) {
	m.fallbacks = append(m.fallbacks, name)
}
