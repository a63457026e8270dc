// ABOUTME: Link preview service extracting titles, descriptions and images from web pages
// ABOUTME: Uses the YouTube oEmbed endpoint for videos and colly to scrape meta tags elsewhere

package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/gocolly/colly"
	"golang.org/x/sync/errgroup"

	"splitview-api/core/domain"
	"splitview-api/core/interfaces"
	"splitview-api/core/resolve"
)

const (
	defaultOEmbedEndpoint = "https://www.youtube.com/oembed"
	defaultThumbnailBase  = "https://img.youtube.com/vi/"
	defaultPreviewTimeout = 10 * time.Second
	defaultMaxBodySize    = 5 * 1024 * 1024
	batchConcurrency      = 10
	maxOEmbedBytes        = 64 * 1024
)

// MetadataConfig holds link preview settings
type MetadataConfig struct {
	UserAgent string
	Timeout   time.Duration

	// MaxBodySize caps how much of a page colly reads
	MaxBodySize int

	// Transport is shared with colly so scraping goes through the same dial guard
	Transport http.RoundTripper

	// OEmbedEndpoint and ThumbnailBase point at YouTube
	OEmbedEndpoint string
	ThumbnailBase  string
}

// MetadataService builds link previews. Failures yield an empty preview.
type MetadataService struct {
	deps interfaces.Dependencies
	cfg  MetadataConfig
}

// NewMetadataService creates a new metadata service
func NewMetadataService(deps interfaces.Dependencies, cfg MetadataConfig) *MetadataService {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultPreviewTimeout
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = defaultMaxBodySize
	}
	if cfg.OEmbedEndpoint == "" {
		cfg.OEmbedEndpoint = defaultOEmbedEndpoint
	}
	if cfg.ThumbnailBase == "" {
		cfg.ThumbnailBase = defaultThumbnailBase
	}

	return &MetadataService{
		deps: deps,
		cfg:  cfg,
	}
}

// Preview returns the preview for targetURL
func (s *MetadataService) Preview(ctx context.Context, targetURL string) domain.LinkPreview {
	targetURL = strings.TrimSpace(targetURL)
	if !isWebURL(targetURL) {
		return domain.LinkPreview{}
	}

	if id, ok := resolve.YouTubeID(targetURL); ok {
		return s.youtubePreview(ctx, targetURL, id)
	}

	return s.scrape(targetURL)
}

// PreviewBatch builds previews concurrently, keyed by URL
func (s *MetadataService) PreviewBatch(ctx context.Context, urls []string) map[string]domain.LinkPreview {
	results := make(map[string]domain.LinkPreview, len(urls))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(batchConcurrency)

	for _, u := range urls {
		targetURL := u
		g.Go(func() error {
			preview := s.Preview(gctx, targetURL)
			mu.Lock()
			results[targetURL] = preview
			mu.Unlock()
			return nil
		})
	}

	_ = g.Wait()
	return results
}

type oembedResponse struct {
	Title      string `json:"title"`
	AuthorName string `json:"author_name"`
}

// youtubePreview asks oEmbed for the title and author. The thumbnail is
// derived from the video ID and returned even when oEmbed fails.
func (s *MetadataService) youtubePreview(ctx context.Context, targetURL, id string) domain.LinkPreview {
	preview := domain.LinkPreview{
		ImageURL: s.cfg.ThumbnailBase + id + "/maxresdefault.jpg",
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	endpoint := s.cfg.OEmbedEndpoint + "?url=" + url.QueryEscape(targetURL) + "&format=json"
	resp, err := s.deps.HTTPClient.Get(ctx, endpoint)
	if err != nil {
		s.deps.Logger.Debug("YouTube oEmbed request failed", map[string]interface{}{
			"url":   targetURL,
			"error": err.Error(),
		})
		return preview
	}
	defer resp.Body().Close()

	if resp.StatusCode() != http.StatusOK {
		s.deps.Logger.Debug("YouTube oEmbed returned non-OK status", map[string]interface{}{
			"url":    targetURL,
			"status": resp.StatusCode(),
		})
		return preview
	}

	var data oembedResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body(), maxOEmbedBytes)).Decode(&data); err != nil {
		return preview
	}

	preview.Title = strings.TrimSpace(data.Title)
	if data.AuthorName != "" {
		preview.Description = "By " + data.AuthorName
	}
	return preview
}

// scrape visits the page with colly and reads title, description and image
func (s *MetadataService) scrape(targetURL string) domain.LinkPreview {
	c := colly.NewCollector(
		colly.MaxBodySize(s.cfg.MaxBodySize),
		colly.AllowURLRevisit(),
	)
	if s.cfg.UserAgent != "" {
		c.UserAgent = s.cfg.UserAgent
	}
	if s.cfg.Transport != nil {
		c.WithTransport(s.cfg.Transport)
	}
	c.SetRequestTimeout(s.cfg.Timeout)

	var title, ogTitle, description, ogDescription, image string

	c.OnHTML("head", func(e *colly.HTMLElement) {
		title = strings.TrimSpace(e.DOM.Find("title").First().Text())
	})

	c.OnHTML("meta", func(e *colly.HTMLElement) {
		content := strings.TrimSpace(e.Attr("content"))
		if content == "" {
			return
		}

		switch strings.ToLower(e.Attr("property")) {
		case "og:title":
			setOnce(&ogTitle, content)
		case "og:description":
			setOnce(&ogDescription, content)
		case "og:image":
			setOnce(&image, e.Request.AbsoluteURL(content))
		}
		if strings.EqualFold(e.Attr("name"), "description") {
			setOnce(&description, content)
		}
	})

	c.OnError(func(r *colly.Response, err error) {
		s.deps.Logger.Debug("Error visiting URL for metadata", map[string]interface{}{
			"url":    targetURL,
			"error":  err.Error(),
			"status": r.StatusCode,
		})
	})

	if err := c.Visit(targetURL); err != nil {
		return domain.LinkPreview{}
	}

	return domain.LinkPreview{
		Title:       firstNonEmpty(title, ogTitle),
		Description: firstNonEmpty(description, ogDescription),
		ImageURL:    image,
	}
}

func isWebURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func setOnce(dst *string, v string) {
	if *dst == "" {
		*dst = v
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
