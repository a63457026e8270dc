// ABOUTME: Run methods for the resolve, probe, extract and preview commands
// ABOUTME: Output uses the same response shapes as the HTTP API

package main

import (
	"fmt"

	"splitview-api/api/dto/mappers"
	"splitview-api/api/dto/responses"
	"splitview-api/core/domain"
	coreerrors "splitview-api/core/errors"
)

// Run executes the resolve command.
func (c *ResolveCmd) Run(deps *Dependencies) error {
	decision, err := deps.Viewer.Resolve(deps.Ctx, c.URL, c.Type)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}
	return writeJSON(deps.Stdout, mappers.ToViewerDecisionResponse(decision))
}

// Run executes the probe command.
func (c *ProbeCmd) Run(deps *Dependencies) error {
	decisions := make([]domain.EmbedDecision, len(c.URLs))
	for i, u := range c.URLs {
		decisions[i] = deps.Prober.Probe(deps.Ctx, u)
	}

	if len(c.URLs) == 1 {
		return writeJSON(deps.Stdout, mappers.ToEmbedResponse(decisions[0]))
	}
	return writeJSON(deps.Stdout, mappers.ToBatchEmbedResponse(c.URLs, decisions))
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	article, err := deps.Reader.Extract(deps.Ctx, c.URL)
	if err != nil {
		if coreerrors.IsClientRendered(err) {
			fmt.Fprintln(deps.Stderr, "hint: the page renders its content with JavaScript, open it in a new tab instead")
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", err)
		return err
	}

	switch c.Format {
	case "html":
		_, err = fmt.Fprintln(deps.Stdout, article.Content)
	case "text":
		_, err = fmt.Fprintln(deps.Stdout, article.TextContent)
	case "markdown":
		if article.Markdown == "" {
			return fmt.Errorf("markdown output is disabled, set FEATURE_MARKDOWN_OUTPUT=true")
		}
		_, err = fmt.Fprintln(deps.Stdout, article.Markdown)
	default:
		err = writeJSON(deps.Stdout, mappers.ToArticleResponse(article))
	}
	return err
}

// Run executes the preview command.
func (c *PreviewCmd) Run(deps *Dependencies) error {
	if len(c.URLs) == 1 {
		return writeJSON(deps.Stdout, mappers.ToLinkPreviewResponse(deps.Metadata.Preview(deps.Ctx, c.URLs[0])))
	}

	previews := deps.Metadata.PreviewBatch(deps.Ctx, c.URLs)
	out := make(map[string]responses.LinkPreviewResponse, len(previews))
	for u, p := range previews {
		out[u] = mappers.ToLinkPreviewResponse(p)
	}
	return writeJSON(deps.Stdout, out)
}
