package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func longArticlePage() string {
	body := strings.Repeat("<p>"+paragraph+"</p>\n", 6)
	return `<!DOCTYPE html><html><head><title>Understanding Go Interfaces</title>
<meta property="og:title" content="Understanding Go Interfaces"></head>
<body>
<nav><a href="/">Home</a><a href="/docs">Docs</a></nav>
<article><h1>Understanding Go Interfaces</h1>` + body + `</article>
<aside>Sidebar content</aside>
<footer>Copyright 2024</footer>
</body></html>`
}

func TestReadabilityEngine_Extract(t *testing.T) {
	doc := parseHTML(t, longArticlePage())

	res, err := NewReadability().Extract(doc, mustURL(t, "https://example.com/post"))
	require.NoError(t, err)

	assert.Equal(t, "Understanding Go Interfaces", res.Title)
	assert.Contains(t, res.Content, "satisfied implicitly")
	assert.Greater(t, res.TextLength, 100)
}

func TestTrafilaturaEngine_Extract(t *testing.T) {
	doc := parseHTML(t, longArticlePage())

	res, err := NewTrafilatura().Extract(doc, mustURL(t, "https://example.com/post"))
	require.NoError(t, err)

	assert.NotEmpty(t, res.Title)
	assert.Contains(t, res.Content, "satisfied implicitly")
	assert.Greater(t, res.TextLength, 100)
}
