// ABOUTME: URL classifier mapping viewer URLs to embeddable categories without network I/O
// ABOUTME: Normalizes YouTube and Vimeo links to canonical embed URLs

package resolve

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strconv"
	"strings"

	"splitview-api/core/domain"
	"splitview-api/pkg/utils/duration"
)

// Hosts holds the host suffix lists consulted by the classifier
type Hosts struct {
	Video    []string
	Document []string
	Sandbox  []string
}

// DefaultHosts returns the built-in host lists
func DefaultHosts() Hosts {
	return Hosts{
		Video:    []string{"youtube.com", "youtube-nocookie.com", "youtu.be", "vimeo.com"},
		Document: []string{"drive.google.com", "docs.google.com"},
		Sandbox:  []string{"codesandbox.io", "codepen.io", "jsfiddle.net", "replit.com"},
	}
}

var (
	youtubeIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
	vimeoIDPattern   = regexp.MustCompile(`^[0-9]+$`)

	imageExtensions = map[string]bool{
		".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
		".webp": true, ".svg": true, ".avif": true, ".bmp": true,
	}

	// youtubePathPrefixes are path shapes that carry the video id as the next segment
	youtubePathPrefixes = []string{"/shorts/", "/embed/", "/v/", "/live/"}
)

// Classifier maps URLs onto categories using configured host lists
type Classifier struct {
	hosts Hosts
}

// NewClassifier creates a classifier. Host entries are lowercased and trimmed.
func NewClassifier(hosts Hosts) *Classifier {
	return &Classifier{
		hosts: Hosts{
			Video:    normalizeHosts(hosts.Video),
			Document: normalizeHosts(hosts.Document),
			Sandbox:  normalizeHosts(hosts.Sandbox),
		},
	}
}

func normalizeHosts(hosts []string) []string {
	out := make([]string, 0, len(hosts))
	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		h = strings.TrimPrefix(h, ".")
		if h != "" {
			out = append(out, h)
		}
	}
	return out
}

// Resolve unwraps rawURL exactly once and classifies the destination
func (c *Classifier) Resolve(rawURL string) domain.ResolvedTarget {
	target := c.Classify(Unwrap(rawURL))
	target.RawURL = rawURL
	return target
}

// Classify returns the category of rawURL. Anything it cannot
// recognize, including unparseable input, is CategoryGeneric.
func (c *Classifier) Classify(rawURL string) domain.ResolvedTarget {
	target := domain.ResolvedTarget{
		RawURL:       rawURL,
		UnwrappedURL: rawURL,
		Category:     domain.CategoryGeneric,
	}

	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return target
	}
	scheme := strings.ToLower(u.Scheme)
	if u.Host != "" && scheme != "http" && scheme != "https" {
		return target
	}
	if u.Host == "" && !strings.HasPrefix(u.Path, "/") {
		return target
	}

	host := strings.ToLower(u.Hostname())

	if host != "" && matchesHost(host, c.hosts.Video) {
		if embed, ok := videoEmbedURL(host, u); ok {
			target.Category = domain.CategoryVideo
			target.EmbedURL = embed
		}
		return target
	}

	ext := strings.ToLower(path.Ext(u.Path))
	switch {
	case ext == ".pdf":
		target.Category = domain.CategoryDocument
		target.IsPDF = true
	case imageExtensions[ext]:
		target.Category = domain.CategoryImage
	case host != "" && matchesHost(host, c.hosts.Document):
		target.Category = domain.CategoryDocument
	case host != "" && matchesHost(host, c.hosts.Sandbox):
		target.Category = domain.CategorySandbox
	}
	return target
}

// matchesHost reports whether host equals or is a subdomain of any entry
func matchesHost(host string, list []string) bool {
	for _, h := range list {
		if host == h || strings.HasSuffix(host, "."+h) {
			return true
		}
	}
	return false
}

func videoEmbedURL(host string, u *url.URL) (string, bool) {
	switch {
	case host == "youtu.be" || strings.HasSuffix(host, ".youtu.be"),
		matchesHost(host, []string{"youtube.com", "youtube-nocookie.com"}):
		id, ok := youtubeID(host, u)
		if !ok {
			return "", false
		}
		embed := "https://www.youtube.com/embed/" + id
		if start := startOffset(u.Query()); start > 0 {
			embed += "?start=" + strconv.Itoa(start)
		}
		return embed, true
	case matchesHost(host, []string{"vimeo.com"}):
		id, ok := vimeoID(host, u)
		if !ok {
			return "", false
		}
		return fmt.Sprintf("https://player.vimeo.com/video/%s", id), true
	}
	return "", false
}

// YouTubeID returns the video ID of any recognized YouTube URL shape
func YouTubeID(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	if host != "youtu.be" && !strings.HasSuffix(host, ".youtu.be") &&
		!matchesHost(host, []string{"youtube.com", "youtube-nocookie.com"}) {
		return "", false
	}
	return youtubeID(host, u)
}

func youtubeID(host string, u *url.URL) (string, bool) {
	p := u.Path
	lower := strings.ToLower(p)

	var id string
	switch {
	case host == "youtu.be" || strings.HasSuffix(host, ".youtu.be"):
		id = firstSegment(strings.TrimPrefix(p, "/"))
	case lower == "/watch" || lower == "/watch/":
		id = u.Query().Get("v")
	default:
		for _, prefix := range youtubePathPrefixes {
			if strings.HasPrefix(lower, prefix) {
				id = firstSegment(p[len(prefix):])
				break
			}
		}
	}

	if id == "" || !youtubeIDPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

func vimeoID(host string, u *url.URL) (string, bool) {
	p := strings.TrimPrefix(u.Path, "/")
	if strings.HasPrefix(host, "player.") {
		if !strings.HasPrefix(strings.ToLower(p), "video/") {
			return "", false
		}
		p = p[len("video/"):]
	}
	id := firstSegment(p)
	if !vimeoIDPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

func firstSegment(p string) string {
	if i := strings.Index(p, "/"); i >= 0 {
		return p[:i]
	}
	return p
}

// startOffset reads a start time in seconds from t or start.
// Accepted forms are 42, 42s, 1m30s and 1h2m3s.
func startOffset(query url.Values) int {
	for _, key := range []string{"t", "start"} {
		if seconds, ok := duration.Seconds(query.Get(key)); ok {
			return seconds
		}
	}
	return 0
}
