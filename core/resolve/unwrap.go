// ABOUTME: Redirect and tracking-link unwrapper for incoming viewer URLs
// ABOUTME: Extracts the real destination from known click-through redirector shapes

package resolve

import (
	"net/url"
	"strings"
)

// redirector describes one known click-through URL shape
type redirector struct {
	name string

	// matchHost reports whether the lowercased host belongs to the redirector
	matchHost func(host string) bool

	// path is matched case-insensitively; a trailing slash means prefix match
	path string

	// params are tried in order; the first absolute http(s) value wins
	params []string
}

var redirectors = []redirector{
	{name: "google", matchHost: hostContains("google."), path: "/url", params: []string{"q", "url"}},
	{name: "google-images", matchHost: hostContains("google."), path: "/imgres", params: []string{"imgurl"}},
	{name: "duckduckgo", matchHost: hostContains("duckduckgo.com"), path: "/l/", params: []string{"uddg"}},
	{name: "facebook", matchHost: hostIs("l.facebook.com", "lm.facebook.com"), path: "/l.php", params: []string{"u"}},
	{name: "reddit", matchHost: hostIs("out.reddit.com"), path: "", params: []string{"url"}},
	{name: "slack", matchHost: hostIs("slack-redir.net"), path: "/link", params: []string{"url"}},
}

func hostContains(fragment string) func(string) bool {
	return func(host string) bool {
		return strings.Contains(host, fragment)
	}
}

func hostIs(hosts ...string) func(string) bool {
	return func(host string) bool {
		host = strings.TrimPrefix(host, "www.")
		for _, h := range hosts {
			if host == h {
				return true
			}
		}
		return false
	}
}

// Unwrap returns the destination of a known redirector URL, following nested
// redirectors, or the input unchanged when it is not a redirector.
// Unwrap(Unwrap(u)) == Unwrap(u) for every input.
func Unwrap(raw string) string {
	current := raw
	for {
		// a destination is a query value of current, so it is always shorter
		next, ok := unwrapOnce(current)
		if !ok || len(next) >= len(current) {
			return current
		}
		current = next
	}
}

func unwrapOnce(raw string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return "", false
	}

	host := strings.ToLower(u.Hostname())
	path := strings.ToLower(u.EscapedPath())
	for _, r := range redirectors {
		if !r.matchHost(host) || !matchPath(path, r.path) {
			continue
		}
		query := u.Query()
		for _, param := range r.params {
			if dest := query.Get(param); isAbsoluteHTTP(dest) {
				return dest, true
			}
		}
	}
	return "", false
}

func matchPath(path, pattern string) bool {
	if pattern == "" {
		return true
	}
	if strings.HasSuffix(pattern, "/") {
		return strings.HasPrefix(path, pattern)
	}
	return path == pattern
}

func isAbsoluteHTTP(raw string) bool {
	if raw == "" {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}
