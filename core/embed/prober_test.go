package embed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"splitview-api/core/domain"
	"splitview-api/core/interfaces"
)

func newTestProber(client interfaces.HTTPClient) *Prober {
	return NewProber(interfaces.Dependencies{
		HTTPClient: client,
		Logger:     &mockLogger{},
	}, Config{PublicOrigin: "https://study.example.org", Timeout: time.Second})
}

func headersClient(h http.Header) *mockHTTPClient {
	return &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: http.StatusOK, headers: h}, nil
		},
	}
}

func TestProbe_InternalURLsSkipNetwork(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			t.Fatalf("unexpected request to %s", url)
			return nil, nil
		},
	}
	p := newTestProber(client)

	for _, target := range []string{
		"/uploads/notes.pdf",
		"https://study.example.org/topics/4",
		"HTTPS://STUDY.EXAMPLE.ORG/x",
	} {
		d := p.Probe(context.Background(), target)
		assert.Equal(t, domain.EmbedAllowed, d.CanEmbed, target)
		assert.Equal(t, "Internal URL - always embeddable", d.Reason)
	}
}

func TestProbe_LookalikeOriginIsExternal(t *testing.T) {
	p := newTestProber(headersClient(http.Header{}))

	assert.False(t, p.IsInternal("https://study.example.org.evil.example/x"))
	assert.False(t, p.IsInternal("//evil.example/x"))
}

func TestProbe_ScenarioB_SameOrigin(t *testing.T) {
	h := http.Header{}
	h.Set("X-Frame-Options", "SAMEORIGIN")
	p := newTestProber(headersClient(h))

	d := p.Probe(context.Background(), "https://news.example.com/story")

	assert.Equal(t, domain.EmbedBlocked, d.CanEmbed)
	assert.Equal(t, "X-Frame-Options: SAMEORIGIN", d.Reason)
}

func TestProbe_DenyWinsOverPermissiveCSP(t *testing.T) {
	h := http.Header{}
	h.Set("X-Frame-Options", "DENY")
	h.Set("Content-Security-Policy", "frame-ancestors *")
	p := newTestProber(headersClient(h))

	d := p.Probe(context.Background(), "https://bank.example.com")

	assert.Equal(t, domain.EmbedBlocked, d.CanEmbed)
	assert.Equal(t, "X-Frame-Options: DENY", d.Reason)
}

func TestProbe_CSPFrameAncestors(t *testing.T) {
	tests := []struct {
		name   string
		csp    []string
		want   domain.EmbedStatus
		reason string
	}{
		{
			name:   "self only",
			csp:    []string{"default-src 'self'; frame-ancestors 'self'"},
			want:   domain.EmbedBlocked,
			reason: "Content-Security-Policy: frame-ancestors 'self'",
		},
		{
			name:   "none",
			csp:    []string{"frame-ancestors 'none'; script-src 'self'"},
			want:   domain.EmbedBlocked,
			reason: "Content-Security-Policy: frame-ancestors 'none'",
		},
		{
			name:   "uppercase directive",
			csp:    []string{"FRAME-ANCESTORS 'NONE'"},
			want:   domain.EmbedBlocked,
			reason: "Content-Security-Policy: FRAME-ANCESTORS 'NONE'",
		},
		{
			name: "self plus our origin",
			csp:  []string{"frame-ancestors 'self' https://study.example.org"},
			want: domain.EmbedAllowed,
		},
		{
			name: "self plus wildcard subdomain of our origin",
			csp:  []string{"frame-ancestors 'self' *.example.org"},
			want: domain.EmbedAllowed,
		},
		{
			name:   "self plus someone else",
			csp:    []string{"frame-ancestors 'self' https://partner.example.net"},
			want:   domain.EmbedBlocked,
			reason: "Content-Security-Policy: frame-ancestors 'self' https://partner.example.net",
		},
		{
			name:   "second header carries the directive",
			csp:    []string{"default-src https:", "frame-ancestors 'none'"},
			want:   domain.EmbedBlocked,
			reason: "Content-Security-Policy: frame-ancestors 'none'",
		},
		{
			name:   "comma-joined policies in one header",
			csp:    []string{"frame-ancestors 'self', default-src *"},
			want:   domain.EmbedBlocked,
			reason: "Content-Security-Policy: frame-ancestors 'self'",
		},
		{
			name: "comma-joined policies allowing our origin",
			csp:  []string{"default-src *, frame-ancestors 'self' https://study.example.org"},
			want: domain.EmbedAllowed,
		},
		{
			name: "no frame-ancestors",
			csp:  []string{"default-src 'self'"},
			want: domain.EmbedAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for _, v := range tt.csp {
				h.Add("Content-Security-Policy", v)
			}
			p := newTestProber(headersClient(h))

			d := p.Probe(context.Background(), "https://docs.example.com/page")

			assert.Equal(t, tt.want, d.CanEmbed)
			if tt.reason != "" {
				assert.Equal(t, tt.reason, d.Reason)
			}
		})
	}
}

func TestProbe_NoHeadersAllowed(t *testing.T) {
	p := newTestProber(headersClient(http.Header{}))

	d := p.Probe(context.Background(), "https://blog.example.com/post")

	assert.Equal(t, domain.EmbedAllowed, d.CanEmbed)
	assert.Equal(t, "No blocking headers detected", d.Reason)
}

func TestProbe_NetworkErrorIsUnknown(t *testing.T) {
	var warned bool
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("dial tcp: lookup nowhere.invalid: no such host")
		},
	}
	p := NewProber(interfaces.Dependencies{
		HTTPClient: client,
		Logger: &mockLogger{warnFunc: func(msg string, fields map[string]interface{}) {
			warned = true
		}},
	}, Config{})

	d := p.Probe(context.Background(), "https://nowhere.invalid")

	assert.Equal(t, domain.EmbedUnknown, d.CanEmbed)
	assert.NotEqual(t, domain.EmbedBlocked, d.CanEmbed)
	assert.Contains(t, d.Reason, "no such host")
	assert.True(t, warned)
	assert.True(t, d.ShouldFrame())
}

func TestProbe_HeadNotAllowedFallsBackToGet(t *testing.T) {
	bodyRead := false
	h := http.Header{}
	h.Set("X-Frame-Options", "deny")

	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: http.StatusMethodNotAllowed}, nil
		},
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: http.StatusOK, headers: h, body: "<html>large</html>", bodyRead: &bodyRead}, nil
		},
	}
	p := newTestProber(client)

	d := p.Probe(context.Background(), "https://legacy.example.com")

	assert.Equal(t, domain.EmbedBlocked, d.CanEmbed)
	assert.Equal(t, "X-Frame-Options: deny", d.Reason)
	assert.False(t, bodyRead, "GET fallback must not read the body")
}

func TestProbe_HeadersCountOnErrorStatus(t *testing.T) {
	h := http.Header{}
	h.Set("X-Frame-Options", "SAMEORIGIN")
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: http.StatusForbidden, headers: h}, nil
		},
	}
	p := newTestProber(client)

	d := p.Probe(context.Background(), "https://members.example.com")

	assert.Equal(t, domain.EmbedBlocked, d.CanEmbed)
}

func TestProbe_TimeoutIsUnknown(t *testing.T) {
	client := &mockHTTPClient{
		headFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}
	p := NewProber(interfaces.Dependencies{HTTPClient: client, Logger: &mockLogger{}},
		Config{Timeout: 20 * time.Millisecond})

	d := p.Probe(context.Background(), "https://slow.example.com")

	assert.Equal(t, domain.EmbedUnknown, d.CanEmbed)
	assert.Contains(t, d.Reason, "deadline exceeded")
}

type countingMetrics struct {
	interfaces.NoopMetrics
	probes map[string]int
}

func (m *countingMetrics) ProbeResult(status string) {
	m.probes[status]++
}

func TestProbe_RecordsMetrics(t *testing.T) {
	metrics := &countingMetrics{probes: map[string]int{}}
	p := NewProber(interfaces.Dependencies{
		HTTPClient: headersClient(http.Header{}),
		Logger:     &mockLogger{},
		Metrics:    metrics,
	}, Config{})

	p.Probe(context.Background(), "https://a.example.com")
	p.Probe(context.Background(), "/local")

	assert.Equal(t, 2, metrics.probes["allowed"])
}

// The prober works against a real server through any HTTPClient; this
// exercises header plumbing without the mock.
type serverClient struct {
	srv *httptest.Server
}

func (c serverClient) do(ctx context.Context, method, url string) (interfaces.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.srv.Client().Do(req)
	if err != nil {
		return nil, err
	}
	return &mockResponse{statusCode: resp.StatusCode, headers: resp.Header}, resp.Body.Close()
}

func (c serverClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodGet, url)
}

func (c serverClient) Head(ctx context.Context, url string) (interfaces.Response, error) {
	return c.do(ctx, http.MethodHead, url)
}

func TestProbe_AgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Security-Policy", "frame-ancestors 'self'")
	}))
	defer srv.Close()

	p := newTestProber(serverClient{srv: srv})

	d := p.Probe(context.Background(), srv.URL)
	require.Equal(t, domain.EmbedBlocked, d.CanEmbed)
	assert.Equal(t, srv.URL, d.URL)
}
