package llm

import "context"

type Provider interface {
	// Analyze sends the prompts to the model and returns its reply
	Analyze(ctx context.Context, systemPrompt, userPrompt string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64
}

// Response holds the generated text and token accounting for one call
type Response struct {
	Content string
	Usage   Usage
}
