// ABOUTME: Engine backed by go-shiori/go-readability
// ABOUTME: Runs the Mozilla Readability port on the cloned document

package extract

import (
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"
	"golang.org/x/net/html"
)

// Readability wraps go-readability
type Readability struct{}

// NewReadability creates the readability engine
func NewReadability() *Readability {
	return &Readability{}
}

// Name implements Engine
func (r *Readability) Name() string {
	return EngineReadability
}

// Extract implements Engine
func (r *Readability) Extract(doc *html.Node, pageURL *url.URL) (*Result, error) {
	if pageURL == nil {
		pageURL = &url.URL{}
	}

	md := ReadMetadata(doc)

	article, err := readability.FromDocument(doc, pageURL)
	if err != nil {
		return nil, err
	}
	if article.Node == nil || strings.TrimSpace(article.Content) == "" {
		return nil, ErrNoCandidate
	}

	text := strings.Join(strings.Fields(article.TextContent), " ")
	return &Result{
		Title:      firstNonEmpty(article.Title, md.Title),
		Byline:     firstNonEmpty(article.Byline, md.Byline),
		Excerpt:    firstNonEmpty(article.Excerpt, md.Excerpt),
		SiteName:   firstNonEmpty(article.SiteName, md.SiteName),
		Content:    article.Content,
		TextLength: TextLength(text),
	}, nil
}
