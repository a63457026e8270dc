package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	main "splitview-api/cmd/splitview"
	"splitview-api/core/domain"
	coreerrors "splitview-api/core/errors"
)

func newDeps() (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func TestMain_Run_HelpShowsCommands(t *testing.T) {
	t.Parallel()

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)
	require.NoError(t, err)

	help := stdout.String()
	for _, cmd := range []string{"resolve", "probe", "extract", "preview"} {
		assert.Contains(t, help, cmd, "help should mention %s", cmd)
	}
	assert.Contains(t, help, "Usage:")
}

func TestMain_Run_NoArgs(t *testing.T) {
	t.Parallel()

	err := main.NewMain().Run(context.Background(), nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestCLI_ParsesResolveHint(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	parser, err := kong.New(cli, kong.Writers(&bytes.Buffer{}, &bytes.Buffer{}), kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"resolve", "https://example.com", "--type", "reader"})
	require.NoError(t, err)

	assert.Equal(t, "https://example.com", cli.Resolve.URL)
	assert.Equal(t, "reader", cli.Resolve.Type)
}

func TestResolveCmd_Run(t *testing.T) {
	t.Parallel()

	deps, stdout, _ := newDeps()
	var gotHint string
	deps.Viewer = &mockViewer{
		resolveFunc: func(_ context.Context, rawURL, hint string) (domain.ViewerDecision, error) {
			gotHint = hint
			return domain.ViewerDecision{
				Target: domain.ResolvedTarget{
					RawURL:       rawURL,
					UnwrappedURL: rawURL,
					Category:     domain.CategoryDocument,
					IsPDF:        true,
				},
				Presentation: domain.PresentationPDF,
				URL:          rawURL,
			}, nil
		},
	}

	cmd := &main.ResolveCmd{URL: "https://example.com/paper.pdf", Type: "pdf"}
	require.NoError(t, cmd.Run(deps))

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
	assert.Equal(t, "pdf", gotHint)
	assert.Equal(t, "pdf", out["presentation"])
	assert.Equal(t, "document", out["category"])
}

func TestResolveCmd_Run_Error(t *testing.T) {
	t.Parallel()

	deps, stdout, stderr := newDeps()
	deps.Viewer = &mockViewer{
		resolveFunc: func(context.Context, string, string) (domain.ViewerDecision, error) {
			return domain.ViewerDecision{}, &coreerrors.ValidationError{Field: "url", Message: "URL is required"}
		},
	}

	err := (&main.ResolveCmd{}).Run(deps)

	require.Error(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "URL is required")
}

func TestProbeCmd_Run(t *testing.T) {
	t.Parallel()

	prober := &mockProber{
		probeFunc: func(_ context.Context, url string) domain.EmbedDecision {
			if url == "https://blocked.example.com" {
				return domain.EmbedDecision{URL: url, CanEmbed: domain.EmbedBlocked, Reason: "X-Frame-Options: DENY"}
			}
			return domain.EmbedDecision{URL: url, CanEmbed: domain.EmbedUnknown, Reason: "timeout"}
		},
	}

	t.Run("single url", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Prober = prober

		require.NoError(t, (&main.ProbeCmd{URLs: []string{"https://blocked.example.com"}}).Run(deps))

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.Equal(t, false, out["canEmbed"])
		assert.Equal(t, "X-Frame-Options: DENY", out["reason"])
	})

	t.Run("several urls keep order", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Prober = prober

		urls := []string{"https://slow.example.com", "https://blocked.example.com"}
		require.NoError(t, (&main.ProbeCmd{URLs: urls}).Run(deps))

		var out struct {
			Results []map[string]interface{} `json:"results"`
		}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		require.Len(t, out.Results, 2)
		assert.Equal(t, urls[0], out.Results[0]["url"])
		assert.Equal(t, "unknown", out.Results[0]["canEmbed"])
		assert.Equal(t, false, out.Results[1]["canEmbed"])
	})
}

func TestExtractCmd_Run(t *testing.T) {
	t.Parallel()

	article := &domain.Article{
		Title:       "Title",
		Content:     "<p>Body & more</p>",
		TextContent: "Body & more",
		Markdown:    "# Title\n\nBody & more",
		SourceURL:   "https://example.com/a",
		Length:      11,
	}
	reader := &mockReader{
		extractFunc: func(context.Context, string) (*domain.Article, error) {
			return article, nil
		},
	}

	tests := []struct {
		format string
		want   string
	}{
		{format: "html", want: "<p>Body & more</p>\n"},
		{format: "text", want: "Body & more\n"},
		{format: "markdown", want: "# Title\n\nBody & more\n"},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			t.Parallel()

			deps, stdout, _ := newDeps()
			deps.Reader = reader

			require.NoError(t, (&main.ExtractCmd{URL: article.SourceURL, Format: tt.format}).Run(deps))
			assert.Equal(t, tt.want, stdout.String())
		})
	}

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Reader = reader

		require.NoError(t, (&main.ExtractCmd{URL: article.SourceURL, Format: "json"}).Run(deps))

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.Equal(t, "Title", out["title"])
		assert.Contains(t, stdout.String(), "<p>Body & more</p>", "html is not escaped")
	})
}

func TestExtractCmd_Run_ClientRendered(t *testing.T) {
	t.Parallel()

	deps, stdout, stderr := newDeps()
	deps.Reader = &mockReader{
		extractFunc: func(_ context.Context, url string) (*domain.Article, error) {
			return nil, &coreerrors.NoArticleError{URL: url, Reason: coreerrors.ReasonClientRendered}
		},
	}

	err := (&main.ExtractCmd{URL: "https://app.example.com", Format: "json"}).Run(deps)

	require.Error(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "hint:")
}

func TestExtractCmd_Run_MarkdownDisabled(t *testing.T) {
	t.Parallel()

	deps, _, _ := newDeps()
	deps.Reader = &mockReader{
		extractFunc: func(context.Context, string) (*domain.Article, error) {
			return &domain.Article{Title: "T", Content: "<p>x</p>"}, nil
		},
	}

	err := (&main.ExtractCmd{URL: "https://example.com", Format: "markdown"}).Run(deps)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FEATURE_MARKDOWN_OUTPUT")
}

func TestPreviewCmd_Run(t *testing.T) {
	t.Parallel()

	metadata := &mockMetadata{previews: map[string]domain.LinkPreview{
		"https://a.example.com": {Title: "A", Description: "first", ImageURL: "https://a.example.com/og.png"},
		"https://b.example.com": {Title: "B"},
	}}

	t.Run("single", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Metadata = metadata

		require.NoError(t, (&main.PreviewCmd{URLs: []string{"https://a.example.com"}}).Run(deps))

		var out map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		assert.Equal(t, "A", out["title"])
	})

	t.Run("batch", func(t *testing.T) {
		t.Parallel()

		deps, stdout, _ := newDeps()
		deps.Metadata = metadata

		require.NoError(t, (&main.PreviewCmd{URLs: []string{"https://a.example.com", "https://b.example.com"}}).Run(deps))

		var out map[string]map[string]interface{}
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &out))
		require.Len(t, out, 2)
		assert.Equal(t, "B", out["https://b.example.com"]["title"])
	})
}
