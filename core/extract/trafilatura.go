// ABOUTME: Engine backed by markusmobius/go-trafilatura
// ABOUTME: Renders the cloned document and lets trafilatura pick the main content

package extract

import (
	"net/url"
	"strings"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Trafilatura wraps go-trafilatura
type Trafilatura struct{}

// NewTrafilatura creates the trafilatura engine
func NewTrafilatura() *Trafilatura {
	return &Trafilatura{}
}

// Name implements Engine
func (t *Trafilatura) Name() string {
	return EngineTrafilatura
}

// Extract implements Engine
func (t *Trafilatura) Extract(doc *html.Node, pageURL *url.URL) (*Result, error) {
	md := ReadMetadata(doc)

	raw, err := RenderNode(doc)
	if err != nil {
		return nil, err
	}

	opts := trafilatura.Options{
		OriginalURL:    pageURL,
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(raw), opts)
	if err != nil {
		return nil, err
	}
	if result.ContentNode == nil {
		return nil, ErrNoCandidate
	}

	content, err := RenderNode(result.ContentNode)
	if err != nil {
		return nil, err
	}

	return &Result{
		Title:      firstNonEmpty(result.Metadata.Title, md.Title),
		Byline:     firstNonEmpty(result.Metadata.Author, md.Byline),
		Excerpt:    firstNonEmpty(result.Metadata.Description, md.Excerpt),
		SiteName:   firstNonEmpty(result.Metadata.Sitename, md.SiteName),
		Content:    content,
		TextLength: TextLength(InnerText(result.ContentNode)),
	}, nil
}
