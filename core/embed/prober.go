// ABOUTME: Embeddability prober predicting whether a remote page can be framed
// ABOUTME: Inspects X-Frame-Options and CSP frame-ancestors from a header-only request

package embed

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"splitview-api/core/domain"
	"splitview-api/core/interfaces"
)

const (
	reasonInternal   = "Internal URL - always embeddable"
	reasonNoBlocking = "No blocking headers detected"

	defaultTimeout = 5 * time.Second
)

// Config holds prober settings
type Config struct {
	// PublicOrigin is the scheme and host the viewer is served from
	PublicOrigin string

	// Timeout bounds the whole probe
	Timeout time.Duration
}

// Prober issues header-only requests and reads framing policy
type Prober struct {
	deps   interfaces.Dependencies
	origin *url.URL
	cfg    Config
}

// NewProber creates a prober. An unparseable PublicOrigin is treated as unset.
func NewProber(deps interfaces.Dependencies, cfg Config) *Prober {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if deps.Metrics == nil {
		deps.Metrics = interfaces.NoopMetrics{}
	}

	var origin *url.URL
	if cfg.PublicOrigin != "" {
		if u, err := url.Parse(cfg.PublicOrigin); err == nil && u.Host != "" {
			origin = u
		}
	}

	return &Prober{deps: deps, origin: origin, cfg: cfg}
}

// Probe decides whether target can be shown in an iframe. It never fails:
// request errors produce EmbedUnknown with the error text as the reason.
func (p *Prober) Probe(ctx context.Context, target string) domain.EmbedDecision {
	if p.IsInternal(target) {
		return p.record(domain.EmbedDecision{URL: target, CanEmbed: domain.EmbedAllowed, Reason: reasonInternal})
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	header, err := p.fetchHeaders(ctx, target)
	if err != nil {
		p.deps.Logger.Warn("Embeddability probe failed", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		return p.record(domain.EmbedDecision{URL: target, CanEmbed: domain.EmbedUnknown, Reason: err.Error()})
	}

	return p.record(p.Decide(target, header))
}

// Decide applies the framing rules to already fetched headers.
// X-Frame-Options takes precedence over Content-Security-Policy.
func (p *Prober) Decide(target string, header http.Header) domain.EmbedDecision {
	if xfo := header.Get("X-Frame-Options"); xfo != "" {
		switch firstToken(xfo) {
		case "deny", "sameorigin":
			return domain.EmbedDecision{
				URL:      target,
				CanEmbed: domain.EmbedBlocked,
				Reason:   "X-Frame-Options: " + xfo,
			}
		}
	}

	for _, csp := range header.Values("Content-Security-Policy") {
		// one header line may carry several comma-joined policies
		for _, policy := range strings.Split(csp, ",") {
			directive, sources, ok := frameAncestors(policy)
			if !ok {
				continue
			}
			if p.blocksFraming(sources) {
				return domain.EmbedDecision{
					URL:      target,
					CanEmbed: domain.EmbedBlocked,
					Reason:   "Content-Security-Policy: " + directive,
				}
			}
		}
	}

	return domain.EmbedDecision{URL: target, CanEmbed: domain.EmbedAllowed, Reason: reasonNoBlocking}
}

// IsInternal reports whether target is path-relative or on the public origin
func (p *Prober) IsInternal(target string) bool {
	if strings.HasPrefix(target, "/") && !strings.HasPrefix(target, "//") {
		return true
	}
	if p.origin == nil {
		return false
	}
	u, err := url.Parse(target)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, p.origin.Scheme) && strings.EqualFold(u.Host, p.origin.Host)
}

// fetchHeaders sends HEAD and falls back to GET when HEAD is not supported.
// The GET body is closed unread.
func (p *Prober) fetchHeaders(ctx context.Context, target string) (http.Header, error) {
	resp, err := p.deps.HTTPClient.Head(ctx, target)
	if err != nil {
		return nil, err
	}
	resp.Body().Close()

	if resp.StatusCode() == http.StatusMethodNotAllowed || resp.StatusCode() == http.StatusNotImplemented {
		p.deps.Logger.Debug("HEAD not supported, probing with GET", map[string]interface{}{
			"url":    target,
			"status": resp.StatusCode(),
		})
		resp, err = p.deps.HTTPClient.Get(ctx, target)
		if err != nil {
			return nil, err
		}
		resp.Body().Close()
	}

	header := http.Header{}
	for _, key := range []string{"X-Frame-Options", "Content-Security-Policy"} {
		for _, v := range resp.HeaderValues(key) {
			header.Add(key, v)
		}
	}
	return header, nil
}

// blocksFraming reports whether a frame-ancestors source list excludes us
func (p *Prober) blocksFraming(sources []string) bool {
	if len(sources) == 0 {
		return true
	}
	hasSelf := false
	for _, src := range sources {
		switch strings.ToLower(src) {
		case "'none'":
			return true
		case "'self'":
			hasSelf = true
		}
	}
	if !hasSelf {
		return false
	}
	for _, src := range sources {
		if p.sourceMatchesOrigin(src) {
			return false
		}
	}
	return true
}

// sourceMatchesOrigin implements the CSP host-source match against our origin
func (p *Prober) sourceMatchesOrigin(src string) bool {
	src = strings.ToLower(src)
	if src == "*" {
		return true
	}
	if p.origin == nil || strings.HasPrefix(src, "'") {
		return false
	}

	scheme := strings.ToLower(p.origin.Scheme)
	host := strings.ToLower(p.origin.Hostname())

	if strings.HasSuffix(src, ":") && !strings.Contains(src, "/") {
		return strings.TrimSuffix(src, ":") == scheme
	}

	if i := strings.Index(src, "://"); i >= 0 {
		if src[:i] != scheme {
			return false
		}
		src = src[i+3:]
	}
	if i := strings.IndexAny(src, "/"); i >= 0 {
		src = src[:i]
	}
	srcHost := src
	if h, port, ok := strings.Cut(src, ":"); ok {
		srcHost = h
		if port != "*" && port != p.origin.Port() {
			return false
		}
	}

	if strings.HasPrefix(srcHost, "*.") {
		return strings.HasSuffix(host, srcHost[1:])
	}
	return srcHost == host
}

func (p *Prober) record(decision domain.EmbedDecision) domain.EmbedDecision {
	p.deps.Metrics.ProbeResult(string(decision.CanEmbed))
	return decision
}

// frameAncestors finds the frame-ancestors directive in a policy
func frameAncestors(policy string) (string, []string, bool) {
	for _, directive := range strings.Split(policy, ";") {
		directive = strings.TrimSpace(directive)
		fields := strings.Fields(directive)
		if len(fields) == 0 || !strings.EqualFold(fields[0], "frame-ancestors") {
			continue
		}
		return directive, fields[1:], true
	}
	return "", nil, false
}

func firstToken(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))
	if i := strings.IndexAny(value, ", "); i >= 0 {
		value = value[:i]
	}
	return value
}
