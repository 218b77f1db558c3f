package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/loglens/loglens/internal/config"
)

// OpenAI implements Provider against any OpenAI-compatible local server
// (llama.cpp server, vLLM, LiteLLM). The API key is whatever the local
// server expects; most ignore it.
type OpenAI struct {
	client *openai.Client
	model  string
}

func NewOpenAI(cfg *config.Config) (*OpenAI, error) {
	client := openai.NewClient(
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL()+"/v1"),
	)

	return &OpenAI{
		client: client,
		model:  cfg.Model,
	}, nil
}

func (o *OpenAI) Analyze(ctx context.Context, systemPrompt, userPrompt string, opts ...Option) (*Response, error) {
	// Apply options
	options := &Options{
		Model:       o.model,
		Temperature: 0,
		MaxTokens:   1000,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))

	resp, err := o.client.Chat.Completions.New(
		ctx,
		openai.ChatCompletionNewParams{
			Model:       openai.F(options.Model),
			Messages:    openai.F(messages),
			Temperature: openai.F(options.Temperature),
			MaxTokens:   openai.F(options.MaxTokens),
		},
	)
	if err != nil {
		return nil, err
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai: no choices in response")
	}

	return &Response{
		Content: resp.Choices[0].Message.Content,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}, nil
}
