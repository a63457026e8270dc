// ABOUTME: Site-specific fallback extractors mining embedded structured data
// ABOUTME: Runs only after the primary engine reports that no article was found

package fallback

import (
	"html"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	xhtml "golang.org/x/net/html"

	"splitview-api/core/extract"
)

// Extractor recovers an article from data a framework embedded in the page.
// Parse problems mean "nothing here" and are never returned as errors.
type Extractor interface {
	Name() string
	Extract(doc *xhtml.Node, pageURL *url.URL) (*extract.Result, bool)
}

// Default returns the registered extractors in the order they are tried
func Default() []Extractor {
	return []Extractor{NextData{}, JSONLD{}}
}

// Accept decides whether a result produced by the named extractor is usable
type Accept func(res *extract.Result, name string) bool

// MinChars accepts results with content and at least n characters of text
func MinChars(n int) Accept {
	return func(res *extract.Result, name string) bool {
		return res.TextLength >= n && strings.TrimSpace(res.Content) != ""
	}
}

// Run tries extractors in order and returns the first result accept
// approves, together with the extractor name
func Run(extractors []Extractor, doc *xhtml.Node, pageURL *url.URL, accept Accept) (*extract.Result, string, bool) {
	for _, e := range extractors {
		res, ok := e.Extract(doc, pageURL)
		if !ok || res == nil {
			continue
		}
		if accept(res, e.Name()) {
			return res, e.Name(), true
		}
	}
	return nil, "", false
}

var mountSelectors = []string{"#__next", "#__nuxt", "#root", "#app"}

// IsClientRendered reports a page that ships an application mount point
// with less than minChars of text in it
func IsClientRendered(doc *xhtml.Node, minChars int) bool {
	d := goquery.NewDocumentFromNode(doc)
	for _, sel := range mountSelectors {
		mount := d.Find(sel).First()
		if mount.Length() == 0 {
			continue
		}
		if extract.TextLength(extract.InnerText(mount.Get(0))) < minChars {
			return true
		}
	}
	return false
}

// buildResult measures fragment HTML and fills metadata from the page
func buildResult(doc *xhtml.Node, title, content string) *extract.Result {
	md := extract.ReadMetadata(doc)
	return &extract.Result{
		Title:      firstNonEmpty(title, md.Title),
		Byline:     md.Byline,
		Excerpt:    md.Excerpt,
		SiteName:   md.SiteName,
		Content:    content,
		TextLength: extract.TextLength(fragmentText(content)),
	}
}

// fragmentText returns the visible text of an HTML fragment
func fragmentText(fragment string) string {
	node, err := xhtml.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	return extract.InnerText(node)
}

// textToHTML wraps plain text paragraphs, leaving markup untouched
func textToHTML(s string) string {
	if strings.Contains(s, "<") && strings.Contains(s, ">") {
		return s
	}
	var b strings.Builder
	for _, para := range strings.Split(s, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(para))
		b.WriteString("</p>\n")
	}
	return b.String()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
