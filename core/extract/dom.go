// ABOUTME: Small DOM helpers shared by the extraction engines
// ABOUTME: Text collection, attribute access and rendering over x/net/html nodes

package extract

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// InnerText returns the whitespace-normalized text under n, skipping
// script, style and template content.
func InnerText(n *html.Node) string {
	var b strings.Builder
	collectText(n, &b)
	return strings.Join(strings.Fields(b.String()), " ")
}

func collectText(n *html.Node, b *strings.Builder) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		return
	case html.ElementNode:
		switch n.DataAtom {
		case atom.Script, atom.Style, atom.Template, atom.Noscript:
			return
		case atom.Br, atom.P, atom.Div, atom.Li, atom.Tr, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
			b.WriteByte(' ')
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
	if n.Type == html.ElementNode {
		b.WriteByte(' ')
	}
}

// TextLength counts characters, not bytes
func TextLength(s string) int {
	return utf8.RuneCountInString(s)
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Key == key {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, key, val string) {
	for i, a := range n.Attr {
		if a.Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// elementChildren returns the element children of n
func elementChildren(n *html.Node) []*html.Node {
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// countTags counts descendants of n with any of the given tags
func countTags(n *html.Node, tags ...atom.Atom) int {
	count := 0
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode {
				for _, t := range tags {
					if c.DataAtom == t {
						count++
						break
					}
				}
			}
			walk(c)
		}
	}
	walk(n)
	return count
}

// findFirst returns the first descendant of n matching pred in document order
func findFirst(n *html.Node, pred func(*html.Node) bool) *html.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && pred(c) {
			return c
		}
		if found := findFirst(c, pred); found != nil {
			return found
		}
	}
	return nil
}

// linkDensity is the share of n's text that sits inside links
func linkDensity(n *html.Node) float64 {
	textLen := TextLength(InnerText(n))
	if textLen == 0 {
		return 0
	}
	linkLen := 0
	var walk func(*html.Node)
	walk = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && c.DataAtom == atom.A {
				linkLen += TextLength(InnerText(c))
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return float64(linkLen) / float64(textLen)
}

// RenderNode serializes n to HTML
func RenderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
