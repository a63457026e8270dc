// ABOUTME: Standard HTTP client implementation for outbound probes and page fetches
// ABOUTME: Sends a fixed user agent, never retries and refuses private network targets

package standard

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"splitview-api/core/interfaces"
)

const (
	defaultUserAgent = "Mozilla/5.0 (compatible; SplitView Reader/1.0)"
	maxRedirects     = 10
)

// Options configures the outbound client
type Options struct {
	// Timeout bounds every request, including reading the body
	Timeout time.Duration

	// UserAgent is sent on every request
	UserAgent string

	// AllowPrivateNetworks disables the private address dial guard
	AllowPrivateNetworks bool
}

// StandardHTTPClient implements the HTTPClient interface using standard library
type StandardHTTPClient struct {
	client    *http.Client
	userAgent string
}

// NewStandardHTTPClient creates a new HTTP client from opts
func NewStandardHTTPClient(opts Options) *StandardHTTPClient {
	dialer := &net.Dialer{
		Timeout:   opts.Timeout,
		KeepAlive: 30 * time.Second,
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = dialer.DialContext
	if !opts.AllowPrivateNetworks {
		transport.DialContext = safeDialContext(dialer)
	}

	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &StandardHTTPClient{
		client: &http.Client{
			Timeout:   opts.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= maxRedirects {
					return fmt.Errorf("stopped after %d redirects", maxRedirects)
				}
				return nil
			},
		},
		userAgent: userAgent,
	}
}

// Transport returns the guarded transport so other HTTP stacks can share it
func (c *StandardHTTPClient) Transport() http.RoundTripper {
	return c.client.Transport
}

// UserAgent returns the user agent sent on every request
func (c *StandardHTTPClient) UserAgent() string {
	return c.userAgent
}

// Get performs an HTTP GET request
func (c *StandardHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodGet, url)
}

// Head performs an HTTP HEAD request
func (c *StandardHTTPClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodHead, url)
}

func (c *StandardHTTPClient) do(ctx context.Context, method, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,*/*;q=0.8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	return &httpResponse{
		statusCode: resp.StatusCode,
		body:       resp.Body,
		headers:    resp.Header,
		finalURL:   resp.Request.URL.String(),
	}, nil
}

// httpResponse implements the Response interface
type httpResponse struct {
	statusCode int
	body       io.ReadCloser
	headers    http.Header
	finalURL   string
}

// StatusCode returns the HTTP status code
func (r *httpResponse) StatusCode() int {
	return r.statusCode
}

// Body returns the response body
func (r *httpResponse) Body() io.ReadCloser {
	return r.body
}

// Header returns the value of the specified header
func (r *httpResponse) Header(key string) string {
	return r.headers.Get(key)
}

// HeaderValues returns all values of the specified header
func (r *httpResponse) HeaderValues(key string) []string {
	return r.headers.Values(key)
}

// FinalURL returns the request URL after redirects
func (r *httpResponse) FinalURL() string {
	return r.finalURL
}
