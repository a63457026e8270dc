// ABOUTME: Fallback reading articleBody from schema.org JSON-LD blocks
// ABOUTME: Covers CMSs that embed the full text for search engines

package fallback

import (
	"net/url"
	"strings"

	xhtml "golang.org/x/net/html"

	"splitview-api/core/extract"
)

// JSONLD reads articleBody from application/ld+json scripts
type JSONLD struct{}

// Name implements Extractor
func (JSONLD) Name() string {
	return "json-ld"
}

// Extract implements Extractor
func (JSONLD) Extract(doc *xhtml.Node, pageURL *url.URL) (*extract.Result, bool) {
	for _, obj := range extract.LinkedData(doc) {
		body, _ := obj["articleBody"].(string)
		if strings.TrimSpace(body) == "" {
			continue
		}
		return buildResult(doc, stringField(obj, "headline", "name"), textToHTML(body)), true
	}
	return nil, false
}
