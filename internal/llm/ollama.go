package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/loglens/loglens/internal/config"
)

// Ollama implements Provider using the Ollama /api/generate endpoint of a
// local server.
type Ollama struct {
	baseURL string
	model   string
	client  *http.Client
}

// NewOllama returns a Provider that talks to the Ollama API at cfg.BaseURL().
func NewOllama(cfg *config.Config) *Ollama {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}
	return &Ollama{
		baseURL: strings.TrimSuffix(cfg.BaseURL(), "/"),
		model:   cfg.Model,
		client:  &http.Client{Timeout: timeout},
	}
}

type ollamaGenerateRequest struct {
	Model   string         `json:"model"`
	Prompt  string         `json:"prompt"`
	System  string         `json:"system,omitempty"`
	Stream  bool           `json:"stream"`
	Options *ollamaOptions `json:"options,omitempty"`
}

type ollamaOptions struct {
	NumPredict  int64   `json:"num_predict,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

type ollamaGenerateResponse struct {
	Model           string `json:"model"`
	Response        string `json:"response"`
	Done            bool   `json:"done"`
	PromptEvalCount int64  `json:"prompt_eval_count"`
	EvalCount       int64  `json:"eval_count"`
}

func (o *Ollama) Analyze(ctx context.Context, systemPrompt, userPrompt string, opts ...Option) (*Response, error) {
	options := &Options{Model: o.model}
	for _, opt := range opts {
		opt(options)
	}
	if options.Model == "" {
		options.Model = config.DefaultModel
	}

	reqBody := ollamaGenerateRequest{
		Model:  options.Model,
		Prompt: userPrompt,
		System: systemPrompt,
		Stream: false,
	}
	if options.MaxTokens != 0 || options.Temperature != 0 {
		reqBody.Options = &ollamaOptions{
			NumPredict:  options.MaxTokens,
			Temperature: options.Temperature,
		}
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	url := o.baseURL + "/api/generate"
	slog.Info("sending generate request", "url", url, "model", options.Model)
	slog.Debug("request payload", "payload", string(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := o.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ollama: %s: %s", resp.Status, strings.TrimSpace(string(msg)))
	}

	var out ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("ollama: %w", err)
	}
	if out.Response == "" {
		return nil, fmt.Errorf("ollama: no response field in reply")
	}

	slog.Debug("received reply", "model", out.Model, "done", out.Done)
	return &Response{
		Content: out.Response,
		Usage: Usage{
			PromptTokens:     out.PromptEvalCount,
			CompletionTokens: out.EvalCount,
			TotalTokens:      out.PromptEvalCount + out.EvalCount,
		},
	}, nil
}
