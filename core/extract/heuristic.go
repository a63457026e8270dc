// ABOUTME: Readability-style heuristic engine scoring content blocks in a side table
// ABOUTME: Picks the best candidate and its siblings and copies them into a fresh tree

package extract

import (
	"math"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

const (
	minParagraphChars = 25
	ancestorDepth     = 5
	classWeightUnit   = 25
)

var (
	rxUnlikely = regexp.MustCompile(`(?i)-ad-|ai2html|banner|breadcrumbs|combx|comment|community|cover-wrap|disqus|extra|footer|gdpr|header|legends|menu|related|remark|replies|rss|shoutbox|sidebar|skyscraper|social|sponsor|supplemental|ad-break|agegate|pagination|pager|popup|yom-remote`)
	rxMaybe    = regexp.MustCompile(`(?i)and|article|body|column|content|main|shadow`)
	rxPositive = regexp.MustCompile(`(?i)article|body|content|entry|hentry|h-entry|main|page|pagination|post|text|blog|story`)
	rxNegative = regexp.MustCompile(`(?i)-ad-|hidden|^hid$| hid$| hid |^hid |banner|combx|comment|com-|contact|foot|footer|footnote|gdpr|masthead|media|meta|outbrain|promo|related|scroll|share|shoutbox|sidebar|skyscraper|sponsor|shopping|tags|tool|widget`)
	rxDisplay  = regexp.MustCompile(`(?i)display\s*:\s*none|visibility\s*:\s*hidden`)

	unlikelyRoles = map[string]bool{
		"menu": true, "menubar": true, "complementary": true, "navigation": true,
		"alert": true, "alertdialog": true, "dialog": true,
	}

	// boilerplateTags are never scored and never survive into output
	boilerplateTags = map[atom.Atom]bool{
		atom.Script: true, atom.Style: true, atom.Noscript: true, atom.Template: true,
		atom.Nav: true, atom.Aside: true, atom.Footer: true, atom.Form: true,
		atom.Iframe: true, atom.Object: true, atom.Embed: true, atom.Button: true,
		atom.Input: true, atom.Select: true, atom.Textarea: true, atom.Link: true,
		atom.Meta: true, atom.Dialog: true, atom.Canvas: true,
	}

	scoredTags = map[atom.Atom]bool{
		atom.P: true, atom.Pre: true, atom.Td: true, atom.Section: true,
		atom.H2: true, atom.H3: true, atom.H4: true, atom.H5: true, atom.H6: true,
	}

	blockTags = map[atom.Atom]bool{
		atom.Blockquote: true, atom.Dl: true, atom.Div: true, atom.Img: true,
		atom.Ol: true, atom.P: true, atom.Pre: true, atom.Table: true, atom.Ul: true,
		atom.Section: true, atom.Article: true, atom.Figure: true,
	}
)

// Heuristic is the built-in readability-style engine. Scores are kept in a
// side table keyed by node so the input tree is never modified.
type Heuristic struct {
	preserve []string
}

// NewHeuristic creates the heuristic engine
func NewHeuristic(opts Options) *Heuristic {
	preserve := make([]string, 0, len(opts.PreserveClasses))
	for _, token := range opts.PreserveClasses {
		if token = strings.ToLower(strings.TrimSpace(token)); token != "" {
			preserve = append(preserve, token)
		}
	}
	return &Heuristic{preserve: preserve}
}

// Name implements Engine
func (h *Heuristic) Name() string {
	return EngineHeuristic
}

// Extract implements Engine
func (h *Heuristic) Extract(doc *html.Node, pageURL *url.URL) (*Result, error) {
	s := &scorer{scores: map[*html.Node]float64{}}
	s.walk(doc)

	top := s.topCandidate()
	if top == nil {
		return nil, ErrNoCandidate
	}

	container := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Div,
		Data:     "div",
		Attr: []html.Attribute{
			{Key: "id", Val: "readability-page-1"},
			{Key: "class", Val: "page"},
		},
	}
	for _, n := range s.selectSiblings(top) {
		container.AppendChild(CloneNode(n))
	}

	c := &cleaner{preserve: h.preserve, base: baseURL(doc, pageURL)}
	c.clean(container)

	text := InnerText(container)
	if TextLength(text) == 0 {
		return nil, ErrNoCandidate
	}

	content, err := RenderNode(container)
	if err != nil {
		return nil, err
	}

	md := ReadMetadata(doc)
	excerpt := md.Excerpt
	if excerpt == "" {
		if p := findFirst(container, func(n *html.Node) bool {
			return n.DataAtom == atom.P && InnerText(n) != ""
		}); p != nil {
			excerpt = InnerText(p)
		}
	}

	return &Result{
		Title:      md.Title,
		Byline:     md.Byline,
		Excerpt:    excerpt,
		SiteName:   md.SiteName,
		Content:    content,
		TextLength: TextLength(text),
	}, nil
}

// scorer accumulates candidate scores without touching the tree
type scorer struct {
	scores     map[*html.Node]float64
	candidates []*html.Node
}

func (s *scorer) walk(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode {
			continue
		}
		if boilerplateTags[c.DataAtom] || isHidden(c) || isUnlikely(c) {
			continue
		}
		if scoredTags[c.DataAtom] || isParagraphLikeDiv(c) {
			s.scoreParagraph(c)
		}
		s.walk(c)
	}
}

func (s *scorer) scoreParagraph(el *html.Node) {
	text := InnerText(el)
	length := TextLength(text)
	if length < minParagraphChars {
		return
	}

	commas := strings.Count(text, ",") + strings.Count(text, "，")
	score := 1 + float64(commas) + math.Min(math.Floor(float64(length)/100), 3)

	level := 0
	for anc := el.Parent; anc != nil && level < ancestorDepth; anc = anc.Parent {
		if anc.Type != html.ElementNode || anc.Parent == nil || anc.Parent.Type != html.ElementNode {
			break
		}
		if _, ok := s.scores[anc]; !ok {
			s.scores[anc] = initialScore(anc)
			s.candidates = append(s.candidates, anc)
		}

		divider := 1.0
		switch {
		case level == 1:
			divider = 2
		case level > 1:
			divider = float64(level * 3)
		}
		s.scores[anc] += score / divider
		level++
	}
}

// topCandidate scales every score by link density and returns the best node
func (s *scorer) topCandidate() *html.Node {
	var top *html.Node
	best := math.Inf(-1)
	for _, c := range s.candidates {
		final := s.scores[c] * (1 - linkDensity(c))
		s.scores[c] = final
		if final > best {
			best = final
			top = c
		}
	}
	return top
}

// selectSiblings returns the top candidate plus siblings that look like
// part of the same article, in document order
func (s *scorer) selectSiblings(top *html.Node) []*html.Node {
	parent := top.Parent
	if parent == nil {
		return []*html.Node{top}
	}

	topScore := s.scores[top]
	threshold := math.Max(10, topScore*0.2)
	topClass := attr(top, "class")

	var out []*html.Node
	for _, sib := range elementChildren(parent) {
		if sib == top {
			out = append(out, sib)
			continue
		}
		if boilerplateTags[sib.DataAtom] || isHidden(sib) {
			continue
		}

		bonus := 0.0
		if topClass != "" && attr(sib, "class") == topClass {
			bonus = topScore * 0.2
		}
		if score, ok := s.scores[sib]; ok && score+bonus >= threshold {
			out = append(out, sib)
			continue
		}

		if sib.DataAtom == atom.P {
			text := InnerText(sib)
			length := TextLength(text)
			density := linkDensity(sib)
			switch {
			case length > 80 && density < 0.25:
				out = append(out, sib)
			case length > 0 && length <= 80 && density == 0 && endsSentence(text):
				out = append(out, sib)
			}
		}
	}
	return out
}

func endsSentence(text string) bool {
	return strings.Contains(text, ". ") || strings.HasSuffix(text, ".")
}

func initialScore(n *html.Node) float64 {
	score := float64(classWeight(n))
	switch n.DataAtom {
	case atom.Div:
		score += 5
	case atom.Pre, atom.Td, atom.Blockquote:
		score += 3
	case atom.Address, atom.Ol, atom.Ul, atom.Dl, atom.Dd, atom.Dt, atom.Li, atom.Form:
		score -= 3
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.Th:
		score -= 5
	}
	return score
}

// classWeight scores class and id names against the content keyword lists
func classWeight(n *html.Node) int {
	weight := 0
	for _, v := range []string{attr(n, "class"), attr(n, "id")} {
		if v == "" {
			continue
		}
		if rxNegative.MatchString(v) {
			weight -= classWeightUnit
		}
		if rxPositive.MatchString(v) {
			weight += classWeightUnit
		}
	}
	return weight
}

func isUnlikely(n *html.Node) bool {
	if unlikelyRoles[strings.ToLower(attr(n, "role"))] {
		return true
	}
	if n.DataAtom == atom.Body || n.DataAtom == atom.A || n.DataAtom == atom.Article || n.DataAtom == atom.Main {
		return false
	}
	match := attr(n, "class") + " " + attr(n, "id")
	return rxUnlikely.MatchString(match) && !rxMaybe.MatchString(match)
}

func isHidden(n *html.Node) bool {
	if hasAttr(n, "hidden") || strings.EqualFold(attr(n, "aria-hidden"), "true") {
		return true
	}
	return rxDisplay.MatchString(attr(n, "style"))
}

// isParagraphLikeDiv reports a div that only holds inline content
func isParagraphLikeDiv(n *html.Node) bool {
	if n.DataAtom != atom.Div {
		return false
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && blockTags[c.DataAtom] {
			return false
		}
	}
	return true
}

// baseURL honours a <base href> in the document
func baseURL(doc *html.Node, pageURL *url.URL) *url.URL {
	base := findFirst(doc, func(n *html.Node) bool {
		return n.DataAtom == atom.Base && attr(n, "href") != ""
	})
	if base == nil {
		return pageURL
	}
	ref, err := url.Parse(attr(base, "href"))
	if err != nil {
		return pageURL
	}
	if pageURL == nil {
		if ref.IsAbs() {
			return ref
		}
		return nil
	}
	return pageURL.ResolveReference(ref)
}
