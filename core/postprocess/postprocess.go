// ABOUTME: Per-site content post-processing applied to extracted article HTML
// ABOUTME: Dispatches on hostname suffix through a registry of idempotent transformers

package postprocess

import (
	"net/url"
	"strings"
)

// Transformer rewrites article HTML. Transformers must be idempotent.
type Transformer func(content string) string

type entry struct {
	suffix    string
	transform Transformer
}

// Registry maps hostname suffixes to transformers
type Registry struct {
	entries []entry

	// marker triggers markerTransform when no host matched
	marker          string
	markerTransform Transformer
}

// NewRegistry returns a registry with the built-in site transformers
func NewRegistry() *Registry {
	r := &Registry{
		marker:          gfgTexOpen,
		markerTransform: GeeksforGeeks,
	}
	r.Register("geeksforgeeks.org", GeeksforGeeks)
	r.Register("wikipedia.org", Wikipedia)
	return r
}

// Register adds a transformer for a hostname suffix. Later registrations
// for the same suffix replace earlier ones.
func (r *Registry) Register(suffix string, t Transformer) {
	suffix = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(suffix)), ".")
	for i := range r.entries {
		if r.entries[i].suffix == suffix {
			r.entries[i].transform = t
			return
		}
	}
	r.entries = append(r.entries, entry{suffix: suffix, transform: t})
}

// Process runs the transformer registered for sourceURL's host. When none
// matches but content carries the math marker, the marker transformer runs.
func (r *Registry) Process(content, sourceURL string) string {
	if t := r.lookup(sourceURL); t != nil {
		return t(content)
	}
	if r.markerTransform != nil && strings.Contains(content, r.marker) {
		return r.markerTransform(content)
	}
	return content
}

func (r *Registry) lookup(sourceURL string) Transformer {
	u, err := url.Parse(sourceURL)
	if err != nil {
		return nil
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return nil
	}
	for _, e := range r.entries {
		if host == e.suffix || strings.HasSuffix(host, "."+e.suffix) {
			return e.transform
		}
	}
	return nil
}

var defaultRegistry = NewRegistry()

// PostProcess runs the built-in registry
func PostProcess(content, sourceURL string) string {
	return defaultRegistry.Process(content, sourceURL)
}
