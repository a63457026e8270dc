// ABOUTME: Fallback for Next.js pages reading the __NEXT_DATA__ hydration payload
// ABOUTME: Searches known pageProps paths for article fragments or body fields

package fallback

import (
	"encoding/json"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"splitview-api/core/extract"
)

var (
	// fragmentArrayKeys name arrays of content fragments, most specific first
	fragmentArrayKeys = []string{"articleContentArray", "contentArray", "blocks", "contentBlocks", "sections"}

	// bodyKeys name single fields holding the article body
	bodyKeys = []string{"content", "body", "html", "articleBody"}

	// containerKeys name objects that commonly wrap the article
	containerKeys = []string{"post", "article", "data", "story", "page"}

	// fragmentKeys are read from each array element, in preference order
	fragmentKeys = []string{"content", "html", "text", "body"}

	titleKeys = []string{"title", "headline", "name"}
)

// NextData reads <script id="__NEXT_DATA__">
type NextData struct{}

// Name implements Extractor
func (NextData) Name() string {
	return "next-data"
}

// Extract implements Extractor
func (NextData) Extract(doc *xhtml.Node, pageURL *url.URL) (*extract.Result, bool) {
	script := goquery.NewDocumentFromNode(doc).Find("script#__NEXT_DATA__").First()
	if script.Length() == 0 {
		return nil, false
	}

	var payload map[string]interface{}
	if err := json.Unmarshal([]byte(script.Text()), &payload); err != nil {
		return nil, false
	}

	props, _ := payload["props"].(map[string]interface{})
	pageProps, _ := props["pageProps"].(map[string]interface{})
	if pageProps == nil {
		return nil, false
	}

	for _, root := range searchRoots(pageProps) {
		if content := contentFrom(root); content != "" {
			return buildResult(doc, stringField(root, titleKeys...), content), true
		}
	}
	return nil, false
}

// searchRoots lists pageProps and the wrapper objects below it, two levels deep
func searchRoots(pageProps map[string]interface{}) []map[string]interface{} {
	roots := []map[string]interface{}{pageProps}
	for _, key := range containerKeys {
		child, ok := pageProps[key].(map[string]interface{})
		if !ok {
			continue
		}
		roots = append(roots, child)
		for _, inner := range containerKeys {
			if grandchild, ok := child[inner].(map[string]interface{}); ok {
				roots = append(roots, grandchild)
			}
		}
	}
	return roots
}

// contentFrom assembles article HTML from one object
func contentFrom(obj map[string]interface{}) string {
	for _, key := range fragmentArrayKeys {
		if arr, ok := obj[key].([]interface{}); ok {
			if joined := joinFragments(arr); joined != "" {
				return joined
			}
		}
	}
	for _, key := range bodyKeys {
		switch v := obj[key].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return textToHTML(v)
			}
		case []interface{}:
			if joined := joinFragments(v); joined != "" {
				return joined
			}
		}
	}
	return ""
}

// joinFragments concatenates fragments in order with newlines, preferring
// each fragment's content or html field
func joinFragments(arr []interface{}) string {
	parts := make([]string, 0, len(arr))
	for _, item := range arr {
		switch v := item.(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				parts = append(parts, v)
			}
		case map[string]interface{}:
			if s := stringField(v, fragmentKeys...); s != "" {
				parts = append(parts, s)
			}
		}
	}
	return strings.Join(parts, "\n")
}

func stringField(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}
