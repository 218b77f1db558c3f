package analyzer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/loglens/loglens/apimodels"
	"github.com/loglens/loglens/internal/llm"
)

// Request describes one analysis: the prompt template from the config and
// the tail of the file under analysis.
type Request struct {
	Template    string
	System      string
	Lines       []string
	Model       string
	MaxTokens   int64
	Temperature float64
}

type Analyzer struct {
	llmProvider llm.Provider
}

func New(llmProvider llm.Provider) *Analyzer {
	return &Analyzer{
		llmProvider: llmProvider,
	}
}

// Analyze composes the prompt, issues exactly one provider call, and wraps
// the reply with timing and token metadata.
func (a *Analyzer) Analyze(ctx context.Context, req Request) (*apimodels.AnalysisResponse, error) {
	slog.Info("Starting analysis", "lines", len(req.Lines), "model", req.Model)
	startTime := time.Now()

	prompt := BuildPrompt(req.Template, req.Lines)
	slog.Debug("Full prompt to send", "prompt", prompt)

	llmResp, err := a.llmProvider.Analyze(
		ctx,
		req.System,
		prompt,
		llm.Option(func(o *llm.Options) {
			if req.Model != "" {
				o.Model = req.Model
			}
			if req.MaxTokens != 0 {
				o.MaxTokens = req.MaxTokens
			}
			if req.Temperature != 0 {
				o.Temperature = req.Temperature
			}
		}),
	)
	if err != nil {
		slog.Error("LLM analysis failed", "error", err)
		return nil, fmt.Errorf("LLM analysis failed: %w", err)
	}

	slog.Info("Analysis complete", "tokens", llmResp.Usage.TotalTokens)
	return &apimodels.AnalysisResponse{
		Result: strings.TrimSpace(llmResp.Content),
		Metadata: apimodels.AnalysisMetadata{
			Duration:      time.Since(startTime).String(),
			Model:         req.Model,
			TokensUsed:    llmResp.Usage.TotalTokens,
			LinesAnalyzed: len(req.Lines),
		},
	}, nil
}

// BuildPrompt joins the template and the file tail with a blank line.
func BuildPrompt(template string, lines []string) string {
	return template + "\n\n" + strings.Join(lines, "\n")
}
