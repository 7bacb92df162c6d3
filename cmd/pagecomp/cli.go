package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagecomp"
	"github.com/fwojciec/pagecomp/audit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	RunID    string
	Config   *pagecomp.Config
	Auditor  *audit.Auditor
	Analyzer pagecomp.Analyzer
	Capturer pagecomp.Capturer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `type:"path" help:"Config file (default: $PAGECOMP_CONFIG or $XDG_CONFIG_HOME/pagecomp/config.yaml)"`
	Verbose bool   `short:"v" help:"Log debug details to stderr"`

	Scan    ScanCmd    `cmd:"" help:"Classify UI components in saved .mhtml pages"`
	Capture CaptureCmd `cmd:"" help:"Save a live page as an .mhtml archive"`
	Sample  SampleCmd  `cmd:"" help:"Print the sample page summary as JSON"`
}

// ScanCmd is the "scan" subcommand.
type ScanCmd struct {
	Files   []string `arg:"" optional:"" help:"Archives to scan (at most 5 are read)"`
	Analyze bool     `short:"a" help:"Ask Gemini for pattern insights (needs GEMINI_API_KEY)"`
	Format  string   `short:"f" enum:"markdown,json" default:"markdown" help:"Output format (markdown, json)"`
	Policy  string   `help:"Classification policy (strict, loose)"`
	Match   string   `help:"Keyword match mode (substring, word)"`
}

// CaptureCmd is the "capture" subcommand.
type CaptureCmd struct {
	URL     string        `arg:"" help:"Page URL"`
	Out     string        `arg:"" type:"path" help:"Destination .mhtml file"`
	Timeout time.Duration `default:"30s" help:"Maximum time for loading the page"`
}

// SampleCmd is the "sample" subcommand.
type SampleCmd struct{}
