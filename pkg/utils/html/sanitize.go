// ABOUTME: Sanitizer applied to extracted article HTML before it leaves the service
// ABOUTME: A UGC policy that also keeps allow-listed classes for code and math styling

package html

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Sanitizer strips scripts, handlers and unknown attributes from article HTML.
// A built policy is safe for concurrent use.
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer builds a sanitizer that keeps class tokens containing one of
// preserve, plus the reader page container
func NewSanitizer(preserve []string) *Sanitizer {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)

	if class := classPattern(preserve); class != nil {
		p.AllowAttrs("class").Matching(class).Globally()
	}
	p.AllowAttrs("id").Matching(regexp.MustCompile(`^readability-page-\d+$`)).OnElements("div")
	p.AllowAttrs("loading").Matching(regexp.MustCompile(`^(lazy|eager)$`)).OnElements("img")

	return &Sanitizer{policy: p}
}

// Sanitize returns content with everything outside the policy removed
func (s *Sanitizer) Sanitize(content string) string {
	return s.policy.Sanitize(content)
}

// classPattern matches class attribute values where every token either is
// "page" or contains one of the preserved fragments
func classPattern(preserve []string) *regexp.Regexp {
	var parts []string
	for _, token := range preserve {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		parts = append(parts, regexp.QuoteMeta(strings.ToLower(token)))
	}
	if len(parts) == 0 {
		return nil
	}

	token := `(?:page|[\w-]*(?:` + strings.Join(parts, "|") + `)[\w-]*)`
	return regexp.MustCompile(`(?i)^\s*` + token + `(?:\s+` + token + `)*\s*$`)
}
