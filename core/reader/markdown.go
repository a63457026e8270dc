// ABOUTME: Markdown rendering of extracted articles
// ABOUTME: Wraps html-to-markdown with the title as a heading

package reader

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"

	"splitview-api/core/domain"
)

var (
	excessNewlines = regexp.MustCompile(`\n{3,}`)
	trailingSpace  = regexp.MustCompile(`[ \t]+\n`)
	headerBefore   = regexp.MustCompile(`\n(#{1,6} )`)
	headerAfter    = regexp.MustCompile(`(#{1,6} [^\n]+)\n([^\n])`)
)

type markdownRenderer struct {
	conv *converter.Converter
}

func newMarkdownRenderer() *markdownRenderer {
	return &markdownRenderer{
		conv: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// render converts the sanitized article body and prepends its metadata
func (m *markdownRenderer) render(a *domain.Article) (string, error) {
	if strings.TrimSpace(a.Content) == "" {
		return "", nil
	}

	body, err := m.conv.ConvertString(a.Content)
	if err != nil {
		return "", err
	}

	return buildMarkdownWithMetadata(a.Title, a.Byline, a.SiteName, a.SourceURL, body), nil
}

// buildMarkdownWithMetadata creates a markdown document with a title and a metadata line
func buildMarkdownWithMetadata(title, author, siteName, sourceURL, content string) string {
	var markdown strings.Builder

	if title != "" {
		markdown.WriteString("# ")
		markdown.WriteString(title)
		markdown.WriteString("\n\n")
	}

	var metadataItems []string
	if author != "" {
		metadataItems = append(metadataItems, fmt.Sprintf("**Author:** %s", author))
	}
	if siteName != "" {
		metadataItems = append(metadataItems, fmt.Sprintf("**Source:** %s", siteName))
	}
	if sourceURL != "" {
		metadataItems = append(metadataItems, fmt.Sprintf("**URL:** <%s>", sourceURL))
	}

	if len(metadataItems) > 0 {
		markdown.WriteString(strings.Join(metadataItems, " | "))
		markdown.WriteString("\n\n---\n\n")
	}

	markdown.WriteString(cleanMarkdown(content))

	return markdown.String()
}

// cleanMarkdown normalizes line endings and blank lines. Indentation is
// left alone so code blocks and nested lists survive.
func cleanMarkdown(markdown string) string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")

	markdown = trailingSpace.ReplaceAllString(markdown, "\n")
	markdown = headerBefore.ReplaceAllString(markdown, "\n\n$1")
	markdown = headerAfter.ReplaceAllString(markdown, "$1\n\n$2")
	markdown = excessNewlines.ReplaceAllString(markdown, "\n\n")

	return strings.TrimSpace(markdown)
}
