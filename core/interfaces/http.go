package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making outbound HTTP requests.
// This abstraction allows for easy mocking in tests and switching between
// different HTTP client implementations.
//
// Implementations must not retry: every call is exactly one request.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	// Returns a Response interface or an error if the request fails.
	Get(ctx context.Context, url string) (Response, error)

	// Head performs an HTTP HEAD request to the specified URL.
	Head(ctx context.Context, url string) (Response, error)
}

// Response defines the interface for HTTP responses.
// This abstraction allows different HTTP client implementations to provide
// their own response types while maintaining a consistent interface.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body as an io.ReadCloser.
	// The caller is responsible for closing the body when done.
	Body() io.ReadCloser

	// Header returns the first value of the specified header.
	// Returns an empty string if the header is not present.
	// Header names are case-insensitive.
	Header(key string) string

	// HeaderValues returns every value of the specified header.
	HeaderValues(key string) []string

	// FinalURL returns the URL of the response after redirects.
	FinalURL() string
}
