// ABOUTME: Page metadata extraction from meta tags, JSON-LD and the document title
// ABOUTME: Supplies title, byline, excerpt and site name to every engine and fallback

package extract

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Metadata describes a page independent of its article body
type Metadata struct {
	Title    string
	Byline   string
	Excerpt  string
	SiteName string
}

var titleSeparators = []string{" | ", " – ", " — ", " - ", " :: ", " » ", " / "}

// ReadMetadata collects page metadata. Meta tags win over JSON-LD, which
// wins over the document title and first heading.
func ReadMetadata(doc *html.Node) Metadata {
	d := goquery.NewDocumentFromNode(doc)
	ld := LinkedData(doc)

	md := Metadata{
		Title: firstNonEmpty(
			metaContent(d, "og:title", "twitter:title", "dc.title"),
			ldString(ld, "headline"),
			cleanTitle(strings.TrimSpace(d.Find("head title").First().Text())),
			strings.TrimSpace(d.Find("h1").First().Text()),
		),
		Byline: firstNonEmpty(
			metaContent(d, "author", "dc.creator", "parsely-author"),
			ldAuthor(ld),
			bylineFromDOM(d),
		),
		Excerpt: firstNonEmpty(
			metaContent(d, "og:description", "description", "twitter:description"),
			ldString(ld, "description"),
		),
		SiteName: firstNonEmpty(
			metaContent(d, "og:site_name", "application-name"),
			ldPublisher(ld),
		),
	}
	md.Title = strings.Join(strings.Fields(md.Title), " ")
	return md
}

// metaContent returns the first non-empty content of a meta tag matched by
// name or property, trying keys in order.
func metaContent(d *goquery.Document, keys ...string) string {
	for _, key := range keys {
		var found string
		d.Find("meta").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			name, _ := s.Attr("name")
			prop, _ := s.Attr("property")
			if !strings.EqualFold(name, key) && !strings.EqualFold(prop, key) {
				return true
			}
			content, _ := s.Attr("content")
			found = strings.TrimSpace(content)
			return found == ""
		})
		if found != "" {
			return found
		}
	}
	return ""
}

func bylineFromDOM(d *goquery.Document) string {
	sel := d.Find(`[rel="author"], [itemprop="author"], .byline, .author`).First()
	text := strings.Join(strings.Fields(sel.Text()), " ")
	if TextLength(text) == 0 || TextLength(text) > 100 {
		return ""
	}
	return text
}

// cleanTitle drops a trailing site name when the remaining head still reads
// like a headline
func cleanTitle(title string) string {
	for _, sep := range titleSeparators {
		idx := strings.LastIndex(title, sep)
		if idx <= 0 {
			continue
		}
		head := strings.TrimSpace(title[:idx])
		if len(strings.Fields(head)) >= 3 {
			return head
		}
	}
	return title
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// LinkedData returns every JSON-LD object on the page, with @graph members
// flattened. Malformed blocks are skipped.
func LinkedData(doc *html.Node) []map[string]interface{} {
	var out []map[string]interface{}
	goquery.NewDocumentFromNode(doc).Find(`script[type="application/ld+json"]`).Each(func(_ int, s *goquery.Selection) {
		var raw interface{}
		if err := json.Unmarshal([]byte(s.Text()), &raw); err != nil {
			return
		}
		out = appendLinkedData(out, raw)
	})
	return out
}

func appendLinkedData(out []map[string]interface{}, raw interface{}) []map[string]interface{} {
	switch v := raw.(type) {
	case []interface{}:
		for _, item := range v {
			out = appendLinkedData(out, item)
		}
	case map[string]interface{}:
		out = append(out, v)
		if graph, ok := v["@graph"]; ok {
			out = appendLinkedData(out, graph)
		}
	}
	return out
}

func ldString(ld []map[string]interface{}, key string) string {
	for _, obj := range ld {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func ldName(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case map[string]interface{}:
		if name, ok := t["name"].(string); ok {
			return name
		}
	case []interface{}:
		var names []string
		for _, item := range t {
			if name := ldName(item); name != "" {
				names = append(names, name)
			}
		}
		return strings.Join(names, ", ")
	}
	return ""
}

func ldAuthor(ld []map[string]interface{}) string {
	for _, obj := range ld {
		if name := strings.TrimSpace(ldName(obj["author"])); name != "" {
			return name
		}
	}
	return ""
}

func ldPublisher(ld []map[string]interface{}) string {
	for _, obj := range ld {
		if name := strings.TrimSpace(ldName(obj["publisher"])); name != "" {
			return name
		}
	}
	return ""
}
