// cmd/loglens/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/loglens/loglens/apimodels"
	"github.com/loglens/loglens/internal/analyzer"
	"github.com/loglens/loglens/internal/config"
	"github.com/loglens/loglens/internal/llm"
	"github.com/loglens/loglens/internal/logfile"
	"github.com/loglens/loglens/internal/logging"
)

func main() {
	args := config.ParseArgs()
	if err := run(args); err != nil {
		fmt.Fprintf(os.Stderr, "loglens: %v\n", err)
		os.Exit(1)
	}
}

func run(args *config.CLIArgs) error {
	closeLog, err := logging.Setup(args.Debug)
	if err != nil {
		return err
	}
	defer closeLog()

	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// The file is read before any provider is built, so a missing file never
	// produces a network call.
	lines, err := logfile.Tail(cfg.File, cfg.Lines)
	if err != nil {
		return err
	}
	slog.Debug("read file tail", "file", cfg.File, "lines", len(lines))

	llmProvider, err := llm.NewProvider(cfg)
	if err != nil {
		return fmt.Errorf("failed to create LLM provider: %w", err)
	}

	result, err := analyzer.New(llmProvider).Analyze(context.Background(), analyzer.Request{
		Template:    cfg.Prompt,
		System:      cfg.System,
		Lines:       lines,
		Model:       cfg.Model,
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return err
	}

	printResult(os.Stdout, result)
	slog.Info("analysis finished", "duration", result.Metadata.Duration, "tokens", result.Metadata.TokensUsed)
	return nil
}

func printResult(w *os.File, result *apimodels.AnalysisResponse) {
	banner := strings.Repeat("=", 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, "LLM RESPONSE:")
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w, result.Result)
	fmt.Fprintln(w, banner)
	fmt.Fprintln(w)
}
