// ABOUTME: Kong command tree and the dependencies bound into every command
// ABOUTME: Commands receive services through Dependencies so tests can swap them

package main

import (
	"context"
	"encoding/json"
	"io"

	"splitview-api/core/interfaces"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Viewer   interfaces.ViewerResolver
	Prober   interfaces.EmbedProber
	Reader   interfaces.ArticleExtractor
	Metadata interfaces.MetadataService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool   `short:"v" help:"Log debug output to stderr"`
	Engine  string `help:"Override READER_ENGINE (heuristic, readability, trafilatura)"`

	Resolve ResolveCmd `cmd:"" help:"Decide how a URL would be presented"`
	Probe   ProbeCmd   `cmd:"" help:"Check whether a page may be framed"`
	Extract ExtractCmd `cmd:"" help:"Extract the reader view of a page"`
	Preview PreviewCmd `cmd:"" help:"Fetch link previews for one or more pages"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	URL  string `arg:"" help:"URL to resolve"`
	Type string `short:"t" help:"Presentation hint (iframe, reader, pdf, image, text, new-tab)"`
}

// ProbeCmd is the "probe" subcommand.
type ProbeCmd struct {
	URLs []string `arg:"" name:"url" help:"URLs to probe"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL    string `arg:"" help:"Article URL"`
	Format string `short:"f" enum:"json,html,text,markdown" default:"json" help:"Output format"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URLs []string `arg:"" name:"url" help:"Page URLs"`
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
