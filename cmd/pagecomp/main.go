package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagecomp"
	"github.com/fwojciec/pagecomp/audit"
	"github.com/fwojciec/pagecomp/gemini"
	"github.com/fwojciec/pagecomp/goquery"
	"github.com/fwojciec/pagecomp/mhtml"
	"github.com/fwojciec/pagecomp/rod"
	pcslog "github.com/fwojciec/pagecomp/slog"
	"github.com/fwojciec/pagecomp/yaml"
	"github.com/google/uuid"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// EnvAPIKey names the environment variable holding the Gemini credential.
const EnvAPIKey = "GEMINI_API_KEY"

// Main represents the program.
type Main struct {
	// Getenv reads environment variables. Set before calling Run().
	Getenv func(string) string

	// NewRunID generates the identifier attached to every log line.
	NewRunID func() string

	// Services for end-to-end testing. When nil, Run wires the real
	// implementations.
	Analyzer pagecomp.Analyzer
	Capturer pagecomp.Capturer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Getenv:   os.Getenv,
		NewRunID: uuid.NewString,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagecomp"),
		kong.Description("Find reusable UI components in saved web pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagecomp --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	// Parse arguments first to know which command and its flags
	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.RunID = m.NewRunID()
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With("run", deps.RunID)

	// Wire command-specific dependencies based on command
	switch strings.Fields(kongCtx.Command())[0] {
	case "scan":
		if err := m.wireScan(ctx, cli, deps); err != nil {
			return err
		}
	case "capture":
		if m.Capturer == nil {
			capturer, err := rod.NewCapturer(rod.WithTimeout(cli.Capture.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			m.Capturer = capturer
		}
		defer m.Capturer.Close()
		deps.Capturer = pcslog.NewLoggingCapturer(m.Capturer, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// wireScan loads the configuration and builds the audit pipeline and, when
// requested, the analyzer.
func (m *Main) wireScan(ctx context.Context, cli *CLI, deps *Dependencies) error {
	cfg, err := yaml.Load(cli.Config, m.Getenv)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Set %s or pass --config to use a different file\n", yaml.EnvConfig)
		return err
	}
	if cli.Scan.Policy != "" {
		cfg.Policy = pagecomp.Policy(cli.Scan.Policy)
	}
	if cli.Scan.Match != "" {
		cfg.Match = pagecomp.MatchMode(cli.Scan.Match)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}
	cfg.Gemini.APIKey = m.Getenv(EnvAPIKey)
	deps.Config = cfg

	classifier := goquery.NewClassifier(
		goquery.WithPolicy(cfg.Policy),
		goquery.WithMatchMode(cfg.Match),
		goquery.WithLimits(cfg.Limits),
	)
	deps.Auditor = &audit.Auditor{
		Extractor:  pcslog.NewLoggingExtractor(mhtml.NewExtractor(), deps.Logger),
		Classifier: pcslog.NewLoggingClassifier(classifier, deps.Logger),
		Logger:     deps.Logger,
		MaxFiles:   cfg.MaxFiles,
	}

	if !cli.Scan.Analyze {
		if cfg.Gemini.APIKey == "" && m.Analyzer == nil {
			deps.Logger.Warn(EnvAPIKey + " not set; it is only needed for --analyze")
		}
		return nil
	}

	if m.Analyzer == nil {
		if cfg.Gemini.APIKey == "" {
			fmt.Fprintln(deps.Stderr, "Get an API key at https://aistudio.google.com/apikey")
			return pagecomp.Errorf(pagecomp.EINVALID, "%s not set", EnvAPIKey)
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  cfg.Gemini.APIKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "Hint: Check your %s is valid\n", EnvAPIKey)
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		m.Analyzer = gemini.NewAnalyzer(client.Models, cfg.Gemini)
	}
	deps.Analyzer = pcslog.NewLoggingAnalyzer(m.Analyzer, deps.Logger)
	return nil
}
