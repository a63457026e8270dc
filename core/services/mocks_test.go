package services

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync"

	"splitview-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	mu       sync.Mutex
	requests []string
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	m.mu.Lock()
	m.requests = append(m.requests, url)
	m.mu.Unlock()

	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: http.StatusOK}, nil
}

func (m *mockHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	return &mockResponse{statusCode: http.StatusOK}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    http.Header
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
	return ""
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
