package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/nguyentantai21042004/condense/internal/abstractive"
	"github.com/nguyentantai21042004/condense/internal/config"
	"github.com/nguyentantai21042004/condense/internal/extractive"
	"github.com/nguyentantai21042004/condense/internal/language"
	"github.com/nguyentantai21042004/condense/internal/logger"
	"github.com/nguyentantai21042004/condense/internal/summarizer"
	"github.com/nguyentantai21042004/condense/pkg/executor"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Summarizer replaces the one built from config when set. Used by tests.
	Summarizer summarizer.Summarizer
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("condense"),
		kong.Description("Extractive text summarization service."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'condense --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(cli.Config)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Set CONDENSE_CONFIG or pass --config to point at a config file")
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Logs go to stderr so summaries can be piped from stdout
	log := logger.NewWithFormat(cfg.Logging.Level, cfg.Logging.Format, stderr)
	deps.Config = cfg
	deps.Logger = log

	deps.Summarizer = m.Summarizer
	if deps.Summarizer == nil {
		deps.Summarizer, err = buildSummarizer(cfg, log)
		if err != nil {
			return err
		}
	}

	return kongCtx.Run(deps)
}

func buildSummarizer(cfg *config.Config, log logger.Logger) (summarizer.Summarizer, error) {
	bundle, err := language.Load(language.Options{
		StopwordsFile:  cfg.Language.StopwordsFile,
		PunktModelFile: cfg.Language.PunktModelFile,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load language resources: %w", err)
	}

	backend, err := abstractive.New(cfg.Abstractive, executor.NewInDir(cfg.Abstractive.WorkDir), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create abstractive backend: %w", err)
	}

	return summarizer.New(extractive.New(bundle, log), backend, cfg.Abstractive.MinWords, log), nil
}
