// ABOUTME: Service layer implementation for reader view extraction
// ABOUTME: Fetches a page, runs the configured engine, then fallbacks, post-processing and sanitization

package reader

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"

	"splitview-api/core/domain"
	coreerrors "splitview-api/core/errors"
	"splitview-api/core/extract"
	"splitview-api/core/fallback"
	"splitview-api/core/interfaces"
	"splitview-api/core/postprocess"
	htmlutil "splitview-api/pkg/utils/html"
)

const (
	defaultMinChars     = 100
	defaultMaxBodyBytes = 5 << 20
	defaultTimeout      = 15 * time.Second
	excerptLength       = 200
)

// Config holds extraction settings
type Config struct {
	// Engine selects the primary extraction engine by name
	Engine string

	// MinChars is the confidence floor shared by the engine and the fallbacks
	MinChars int

	// MaxBodyBytes caps how much of a page is read
	MaxBodyBytes int64

	// Timeout bounds fetching and parsing one page
	Timeout time.Duration

	// PreserveClasses survive cleaning and sanitization
	PreserveClasses []string

	// Fallback enables the site-specific fallback extractors
	Fallback bool

	// Markdown enables the markdown rendering of the article
	Markdown bool
}

// Option customizes a Service
type Option func(*Service)

// WithEngine replaces the engine selected by Config.Engine
func WithEngine(e extract.Engine) Option {
	return func(s *Service) {
		s.engine = e
	}
}

// WithFallbacks replaces the default fallback extractors
func WithFallbacks(extractors ...fallback.Extractor) Option {
	return func(s *Service) {
		s.fallbacks = extractors
	}
}

// WithPostProcessor replaces the default post-processing registry
func WithPostProcessor(r *postprocess.Registry) Option {
	return func(s *Service) {
		s.postprocess = r
	}
}

// Service extracts reader views. It keeps no per-request state.
type Service struct {
	deps        interfaces.Dependencies
	cfg         Config
	engine      extract.Engine
	fallbacks   []fallback.Extractor
	postprocess *postprocess.Registry
	sanitizer   *htmlutil.Sanitizer
	markdown    *markdownRenderer
}

// NewService creates a reader service. It fails only on an unknown engine name.
func NewService(deps interfaces.Dependencies, cfg Config, opts ...Option) (*Service, error) {
	if cfg.MinChars <= 0 {
		cfg.MinChars = defaultMinChars
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if len(cfg.PreserveClasses) == 0 {
		cfg.PreserveClasses = extract.DefaultPreserveClasses
	}
	if deps.Metrics == nil {
		deps.Metrics = interfaces.NoopMetrics{}
	}

	s := &Service{
		deps:        deps,
		cfg:         cfg,
		fallbacks:   fallback.Default(),
		postprocess: postprocess.NewRegistry(),
		sanitizer:   htmlutil.NewSanitizer(cfg.PreserveClasses),
		markdown:    newMarkdownRenderer(),
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.engine == nil {
		engine, err := extract.New(cfg.Engine, extract.Options{PreserveClasses: cfg.PreserveClasses})
		if err != nil {
			return nil, err
		}
		s.engine = engine
	}

	return s, nil
}

// Extract fetches rawURL and returns its article. Failures are a
// ValidationError, a FetchError or a NoArticleError.
func (s *Service) Extract(ctx context.Context, rawURL string) (*domain.Article, error) {
	start := time.Now()

	target, err := validateURL(rawURL)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	doc, pageURL, err := s.fetch(ctx, target)
	if err != nil {
		s.deps.Logger.Warn("Failed to fetch article", map[string]interface{}{
			"url":   target,
			"error": err.Error(),
		})
		s.deps.Metrics.ExtractResult(s.engine.Name(), "fetch-error", time.Since(start))
		return nil, err
	}

	article, err := s.extract(doc, pageURL)
	if err != nil {
		outcome := "no-article"
		if coreerrors.IsClientRendered(err) {
			outcome = "client-rendered"
		}
		s.deps.Logger.Info("No article extracted", map[string]interface{}{
			"url":    target,
			"engine": s.engine.Name(),
			"reason": outcome,
		})
		s.deps.Metrics.ExtractResult(s.engine.Name(), outcome, time.Since(start))
		return nil, err
	}

	s.deps.Logger.Debug("Extracted article", map[string]interface{}{
		"url":    target,
		"engine": article.Engine,
		"length": article.Length,
	})
	s.deps.Metrics.ExtractResult(s.engine.Name(), "success", time.Since(start))

	return article, nil
}

// extract runs the engine on a clone of doc and, only when it finds nothing,
// the fallbacks on the untouched original. Every candidate must reach the
// floor both before and after cleaning.
func (s *Service) extract(doc *html.Node, pageURL *url.URL) (*domain.Article, error) {
	var article *domain.Article
	accept := func(res *extract.Result, source string) bool {
		if !s.confident(res) {
			return false
		}
		built := s.build(res, source, pageURL)
		if built.Length < s.cfg.MinChars {
			s.deps.Logger.Debug("Article too short after cleaning", map[string]interface{}{
				"url":    pageURL.String(),
				"engine": source,
				"length": built.Length,
			})
			return false
		}
		article = built
		return true
	}

	res, err := s.engine.Extract(extract.CloneNode(doc), pageURL)
	if err == nil && accept(res, s.engine.Name()) {
		return article, nil
	}
	if err != nil && !errors.Is(err, extract.ErrNoCandidate) {
		s.deps.Logger.Debug("Engine failed", map[string]interface{}{
			"url":    pageURL.String(),
			"engine": s.engine.Name(),
			"error":  err.Error(),
		})
	}

	if s.cfg.Fallback {
		if _, name, ok := fallback.Run(s.fallbacks, doc, pageURL, accept); ok {
			s.deps.Metrics.FallbackUsed(name)
			return article, nil
		}
	}

	reason := coreerrors.ReasonNoArticleFound
	if fallback.IsClientRendered(doc, s.cfg.MinChars) {
		reason = coreerrors.ReasonClientRendered
	}
	return nil, &coreerrors.NoArticleError{URL: pageURL.String(), Reason: reason}
}

// confident applies the floor to the raw result. A missing title is filled
// in from the hostname by build.
func (s *Service) confident(res *extract.Result) bool {
	if res == nil {
		return false
	}
	return fallback.MinChars(s.cfg.MinChars)(res, "")
}

// build post-processes, then sanitizes, then derives text and markdown
func (s *Service) build(res *extract.Result, source string, pageURL *url.URL) *domain.Article {
	sourceURL := pageURL.String()

	content := s.postprocess.Process(res.Content, sourceURL)
	content = s.sanitizer.Sanitize(content)
	text := htmlutil.StripHTML(content)

	article := &domain.Article{
		Title:       strings.TrimSpace(res.Title),
		Byline:      strings.TrimSpace(res.Byline),
		Content:     content,
		TextContent: text,
		Excerpt:     strings.TrimSpace(res.Excerpt),
		SiteName:    strings.TrimSpace(res.SiteName),
		SourceURL:   sourceURL,
		Length:      extract.TextLength(text),
		Engine:      source,
	}
	if article.Title == "" {
		article.Title = pageURL.Hostname()
	}
	if article.SiteName == "" {
		article.SiteName = strings.TrimPrefix(pageURL.Hostname(), "www.")
	}
	if article.Excerpt == "" {
		article.Excerpt = excerpt(text)
	}

	if s.cfg.Markdown {
		md, err := s.markdown.render(article)
		if err != nil {
			s.deps.Logger.Debug("Failed to convert HTML to markdown", map[string]interface{}{
				"url":   sourceURL,
				"error": err.Error(),
			})
		}
		article.Markdown = md
	}

	return article
}

// validateURL accepts absolute http(s) URLs only
func validateURL(rawURL string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return "", &coreerrors.ValidationError{Field: "url", Message: "URL is required"}
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return "", &coreerrors.ValidationError{Field: "url", Message: "URL must be an absolute http or https URL"}
	}

	return u.String(), nil
}

func excerpt(text string) string {
	runes := []rune(text)
	if len(runes) <= excerptLength {
		return text
	}
	cut := string(runes[:excerptLength])
	if i := strings.LastIndex(cut, " "); i > excerptLength/2 {
		cut = cut[:i]
	}
	return cut + "..."
}
