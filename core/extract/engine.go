// ABOUTME: Article extraction engines turning a parsed page into reader content
// ABOUTME: Engines receive a private clone of the document and return unsanitized HTML

package extract

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// Engine names accepted by New
const (
	EngineHeuristic   = "heuristic"
	EngineReadability = "readability"
	EngineTrafilatura = "trafilatura"
)

// ErrNoCandidate is returned when an engine finds nothing that looks like an article
var ErrNoCandidate = errors.New("no content candidate found")

// Result is the raw output of an engine. Content is not yet sanitized.
type Result struct {
	Title      string
	Byline     string
	Excerpt    string
	SiteName   string
	Content    string
	TextLength int
}

// Engine extracts the main article from a document. Engines may mutate doc,
// so callers hand them a clone.
type Engine interface {
	Name() string
	Extract(doc *html.Node, pageURL *url.URL) (*Result, error)
}

// Options tune engine behaviour
type Options struct {
	// PreserveClasses are class tokens that keep an element and its class
	// attribute through cleaning
	PreserveClasses []string
}

// DefaultPreserveClasses are class fragments kept by default
var DefaultPreserveClasses = []string{
	"code", "highlight", "language-", "lang-", "hljs", "syntax",
	"table", "math", "katex", "mathjax", "gfg-tex",
}

// New returns the engine registered under name
func New(name string, opts Options) (Engine, error) {
	if opts.PreserveClasses == nil {
		opts.PreserveClasses = DefaultPreserveClasses
	}

	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", EngineHeuristic:
		return NewHeuristic(opts), nil
	case EngineReadability:
		return NewReadability(), nil
	case EngineTrafilatura:
		return NewTrafilatura(), nil
	default:
		return nil, fmt.Errorf("unknown reader engine %q", name)
	}
}

// CloneNode returns a deep copy of n detached from any tree
func CloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
		Attr:      append([]html.Attribute(nil), n.Attr...),
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(CloneNode(child))
	}
	return c
}
