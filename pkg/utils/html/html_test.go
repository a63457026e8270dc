package html

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"plain text", "just text", "just text"},
		{"entities", "<p>Fish &amp; chips &lt;3</p>", "Fish & chips <3"},
		{"blocks do not glue words", "<p>First</p><p>Second</p>", "First Second"},
		{"script content removed", "<p>Body</p><script>var x = 1;</script>", "Body"},
		{"whitespace collapsed", "<div>  a \n\n b  c </div>", "a b c"},
		{"inline tags keep words", "<p>a<b>bold</b>word</p>", "aboldword"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripHTML(tt.in))
		})
	}
}

func TestDecodeEntities(t *testing.T) {
	assert.Equal(t, `"quoted" & 'single' …`, DecodeEntities("&quot;quoted&quot; &amp; &#39;single&#39; &hellip;"))
}

func TestSanitizer(t *testing.T) {
	s := NewSanitizer([]string{"language-", "hljs", "katex"})

	out := s.Sanitize(`<div id="readability-page-1" class="page"><p class="promo" onclick="x()">Hi</p>` +
		`<pre class="language-go hljs">code</pre><span class="katex-display">m</span>` +
		`<script>alert(1)</script><iframe src="https://evil.example"></iframe></div>`)

	assert.Contains(t, out, `<div id="readability-page-1" class="page">`)
	assert.Contains(t, out, `<p>Hi</p>`)
	assert.Contains(t, out, `<pre class="language-go hljs">`)
	assert.Contains(t, out, `<span class="katex-display">`)
	assert.NotContains(t, out, "script")
	assert.NotContains(t, out, "iframe")
	assert.NotContains(t, out, "onclick")
}

func TestSanitizer_MixedClassRejected(t *testing.T) {
	s := NewSanitizer([]string{"hljs"})

	out := s.Sanitize(`<pre class="hljs tracking-pixel">x</pre>`)

	assert.Equal(t, `<pre>x</pre>`, out)
}
