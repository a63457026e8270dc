// ABOUTME: Command-line entry point for resolving, probing and extracting single URLs
// ABOUTME: Parses arguments with kong and wires the same services the API server uses

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"splitview-api/infrastructure/logger/logrus"
	"splitview-api/internal/app"
	"splitview-api/pkg/config"
	"splitview-api/pkg/featureflags"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFiles are loaded before configuration is read. Set before calling Run().
	EnvFiles []string
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("splitview"),
		kong.Description("Resolve, probe and extract pages the way the split view does"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'splitview --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	if err := config.LoadEnv(m.EnvFiles...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cli.Engine != "" {
		cfg.Reader.Engine = cli.Engine
	}

	level := "warn"
	if cli.Verbose {
		level = "debug"
	}
	logger := logrus.NewWithWriter(stderr, level)

	a, err := app.Build(ctx, cfg, featureflags.NewEnvManager(""), logger)
	if err != nil {
		return err
	}
	defer a.Close()

	deps.Viewer = a.Pipeline
	deps.Prober = a.Prober
	deps.Reader = a.Reader
	deps.Metadata = a.Metadata

	return kongCtx.Run(deps)
}
