// ABOUTME: Output cleaner for the heuristic engine
// ABOUTME: Strips boilerplate and link farms while keeping tables, code and allow-listed classes

package extract

import (
	"net/url"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	// conditionalTags are dropped when they look like navigation or widgets
	conditionalTags = map[atom.Atom]bool{
		atom.Div: true, atom.Section: true, atom.Ul: true, atom.Ol: true,
		atom.Fieldset: true, atom.Header: true, atom.Dl: true,
	}

	// structuralTags always survive conditional cleaning
	structuralTags = []atom.Atom{atom.Table, atom.Pre, atom.Code}

	keptAttrs = map[string]bool{
		"href": true, "src": true, "alt": true, "title": true,
		"colspan": true, "rowspan": true, "start": true, "datetime": true,
		"width": true, "height": true, "lang": true,
	}

	urlAttrs = map[string]bool{"href": true, "src": true, "poster": true}
)

// cleaner rewrites a copied subtree in place
type cleaner struct {
	preserve []string
	base     *url.URL
}

func (c *cleaner) clean(root *html.Node) {
	c.removeBoilerplate(root)
	// the selected blocks themselves are kept; only their content is judged
	for child := root.FirstChild; child != nil; child = child.NextSibling {
		c.cleanConditionally(child)
	}
	c.removeEmpty(root)
	c.rewriteAttrs(root)
}

func (c *cleaner) removeBoilerplate(n *html.Node) {
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		switch {
		case child.Type == html.CommentNode:
			n.RemoveChild(child)
		case child.Type == html.ElementNode && (boilerplateTags[child.DataAtom] || isHidden(child)):
			n.RemoveChild(child)
		default:
			c.removeBoilerplate(child)
		}
		child = next
	}
}

// cleanConditionally walks children before parents so inner widgets go first
func (c *cleaner) cleanConditionally(n *html.Node) {
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		if child.Type == html.ElementNode {
			c.cleanConditionally(child)
			if conditionalTags[child.DataAtom] && c.shouldDrop(child) {
				n.RemoveChild(child)
			}
		}
		child = next
	}
}

func (c *cleaner) shouldDrop(n *html.Node) bool {
	if c.isPreserved(n) {
		return false
	}

	weight := classWeight(n)
	if weight < 0 {
		return true
	}

	text := InnerText(n)
	if strings.Count(text, ",") >= 10 {
		return false
	}

	paragraphs := countTags(n, atom.P)
	images := countTags(n, atom.Img, atom.Picture, atom.Video)
	inputs := countTags(n, atom.Input, atom.Select, atom.Textarea)
	headings := countTags(n, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6)
	density := linkDensity(n)
	length := TextLength(text)

	switch {
	case inputs > 0 && inputs > paragraphs/3:
		return true
	case weight < classWeightUnit && density > 0.2:
		return true
	case weight >= classWeightUnit && density > 0.5:
		return true
	case length < minParagraphChars && images == 0 && headings == 0:
		return true
	}
	return false
}

// isPreserved keeps structural content and allow-listed classes, including
// any container that holds them
func (c *cleaner) isPreserved(n *html.Node) bool {
	for _, t := range structuralTags {
		if n.DataAtom == t || countTags(n, t) > 0 {
			return true
		}
	}
	if c.preservedClass(attr(n, "class")) != "" {
		return true
	}
	return findFirst(n, func(d *html.Node) bool {
		return c.preservedClass(attr(d, "class")) != ""
	}) != nil
}

// preservedClass returns the class tokens that match the allow-list
func (c *cleaner) preservedClass(class string) string {
	if class == "" {
		return ""
	}
	var kept []string
	for _, token := range strings.Fields(class) {
		lower := strings.ToLower(token)
		for _, p := range c.preserve {
			if strings.Contains(lower, p) {
				kept = append(kept, token)
				break
			}
		}
	}
	return strings.Join(kept, " ")
}

func (c *cleaner) removeEmpty(n *html.Node) {
	for child := n.FirstChild; child != nil; {
		next := child.NextSibling
		if child.Type == html.ElementNode {
			c.removeEmpty(child)
			if (child.DataAtom == atom.P || child.DataAtom == atom.Div) && isEmpty(child) {
				n.RemoveChild(child)
			}
		}
		child = next
	}
}

func isEmpty(n *html.Node) bool {
	if InnerText(n) != "" {
		return false
	}
	return countTags(n, atom.Img, atom.Picture, atom.Video, atom.Audio, atom.Table, atom.Pre, atom.Hr, atom.Svg, atom.Math) == 0
}

// rewriteAttrs keeps a small attribute set, filters classes to the
// allow-list and makes links absolute
func (c *cleaner) rewriteAttrs(n *html.Node) {
	if n.Type == html.ElementNode && !isPageContainer(n) {
		c.promoteLazySource(n)

		attrs := n.Attr[:0]
		for _, a := range n.Attr {
			key := strings.ToLower(a.Key)
			switch {
			case key == "class":
				if kept := c.preservedClass(a.Val); kept != "" {
					attrs = append(attrs, html.Attribute{Key: "class", Val: kept})
				}
			case keptAttrs[key]:
				if urlAttrs[key] {
					val, ok := c.absolute(a.Val)
					if !ok {
						continue
					}
					a.Val = val
				}
				attrs = append(attrs, html.Attribute{Key: key, Val: a.Val})
			}
		}
		n.Attr = attrs
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.rewriteAttrs(child)
	}
}

// promoteLazySource copies data-src style attributes onto src
func (c *cleaner) promoteLazySource(n *html.Node) {
	if n.DataAtom != atom.Img || attr(n, "src") != "" {
		return
	}
	for _, key := range []string{"data-src", "data-original", "data-lazy-src"} {
		if v := attr(n, key); v != "" {
			setAttr(n, "src", v)
			return
		}
	}
}

// absolute resolves raw against the base URL. Script URLs are rejected.
func (c *cleaner) absolute(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(strings.ToLower(raw), "javascript:") {
		return "", false
	}
	if raw == "" || strings.HasPrefix(raw, "#") || c.base == nil {
		return raw, true
	}
	ref, err := url.Parse(raw)
	if err != nil {
		return raw, true
	}
	return c.base.ResolveReference(ref).String(), true
}

func isPageContainer(n *html.Node) bool {
	return n.DataAtom == atom.Div && attr(n, "id") == "readability-page-1"
}
