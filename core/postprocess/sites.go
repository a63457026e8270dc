// ABOUTME: Built-in site transformers for GeeksforGeeks math markup and Wikipedia edit links
// ABOUTME: Each rewrite is a pure string transformation safe to apply repeatedly

package postprocess

import (
	"regexp"
	"strings"
)

const (
	gfgTexOpen  = "<gfg-tex>"
	gfgTexClose = "</gfg-tex>"
	mathDelim   = "$$"
)

// GeeksforGeeks decodes the escaped markup inside math blocks, then turns
// <gfg-tex> pairs into $$ display delimiters
func GeeksforGeeks(content string) string {
	content = decodeEntities(content)
	content = strings.ReplaceAll(content, gfgTexOpen, mathDelim)
	return strings.ReplaceAll(content, gfgTexClose, mathDelim)
}

// decodeEntities decodes &lt; &gt; and &amp; in a single pass. An &amp; that
// would produce a new entity is left alone so a second pass is a no-op.
func decodeEntities(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		if s[i] != '&' {
			b.WriteByte(s[i])
			i++
			continue
		}
		rest := s[i:]
		switch {
		case strings.HasPrefix(rest, "&lt;"):
			b.WriteByte('<')
			i += len("&lt;")
		case strings.HasPrefix(rest, "&gt;"):
			b.WriteByte('>')
			i += len("&gt;")
		case strings.HasPrefix(rest, "&amp;"):
			after := rest[len("&amp;"):]
			if strings.HasPrefix(after, "lt;") || strings.HasPrefix(after, "gt;") || strings.HasPrefix(after, "amp;") {
				b.WriteString("&amp;")
			} else {
				b.WriteByte('&')
			}
			i += len("&amp;")
		default:
			b.WriteByte('&')
			i++
		}
	}
	return b.String()
}

// editLinkPattern matches a section [edit] link with or without its
// wrapping spans; class attributes may already have been stripped
var editLinkPattern = regexp.MustCompile(
	`<span[^>]*>\s*<span[^>]*>\[</span>\s*<a\s[^>]*action=edit[^>]*>[^<]*</a>\s*<span[^>]*>\]</span>\s*</span>` +
		`|<span[^>]*>\[</span>\s*<a\s[^>]*action=edit[^>]*>[^<]*</a>\s*<span[^>]*>\]</span>` +
		`|\[\s*<a\s[^>]*action=edit[^>]*>[^<]*</a>\s*\]`)

// Wikipedia removes section [edit] links
func Wikipedia(content string) string {
	return editLinkPattern.ReplaceAllString(content, "")
}
