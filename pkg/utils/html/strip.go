// ABOUTME: HTML utilities for stripping tags and decoding entities
// ABOUTME: Turns sanitized article HTML into the plain text served as textContent

package html

import (
	stdhtml "html"
	"regexp"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var repeatedSpace = regexp.MustCompile(`\s+`)

// blockBoundary puts a space between adjacent block elements so their
// words do not run together once the tags are gone
var blockBoundary = regexp.MustCompile(`(?i)</?(p|div|br|li|h[1-6]|tr|td|th|pre|blockquote|section|article|ul|ol|table|figure|figcaption)\b[^>]*>`)

var strictPool = sync.Pool{
	New: func() any {
		return bluemonday.StrictPolicy()
	},
}

// StripHTML removes every tag, decodes entities and collapses whitespace
func StripHTML(content string) string {
	if content == "" {
		return ""
	}

	policy := strictPool.Get().(*bluemonday.Policy)
	defer strictPool.Put(policy)

	text := policy.Sanitize(blockBoundary.ReplaceAllString(content, " $0"))
	text = stdhtml.UnescapeString(text)
	text = strings.ReplaceAll(text, "\u00a0", " ")

	return strings.TrimSpace(repeatedSpace.ReplaceAllString(text, " "))
}

// DecodeEntities decodes HTML entities, named and numeric
func DecodeEntities(text string) string {
	return stdhtml.UnescapeString(text)
}
