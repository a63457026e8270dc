package embed

import (
	"context"
	"io"
	"net/http"
	"strings"

	"splitview-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc  func(ctx context.Context, url string) (interfaces.Response, error)
	headFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return &mockResponse{statusCode: http.StatusOK}, nil
}

func (m *mockHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	if m.headFunc != nil {
		return m.headFunc(ctx, url)
	}
	return &mockResponse{statusCode: http.StatusOK}, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
	headers    http.Header
	bodyRead   *bool
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return &trackingBody{Reader: strings.NewReader(m.body), read: m.bodyRead}
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

// trackingBody records whether anyone read from it
type trackingBody struct {
	io.Reader
	read *bool
}

func (b *trackingBody) Read(p []byte) (int, error) {
	if b.read != nil {
		*b.read = true
	}
	return b.Reader.Read(p)
}

func (b *trackingBody) Close() error {
	return nil
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	warnFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
