package llm

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// OpenAIClient implements Client for OpenAI-compatible chat-completion
// endpoints via the eino adapter.
type OpenAIClient struct {
	model  model.BaseChatModel
	config *Config
}

// NewOpenAIClient creates a new client for an OpenAI-compatible endpoint.
func NewOpenAIClient(ctx context.Context, config *Config, apiKey string) (*OpenAIClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	temperature := config.Temperature
	maxTokens := config.MaxTokens

	chatModel, err := openai.NewChatModel(ctx, &openai.ChatModelConfig{
		APIKey:      apiKey,
		BaseURL:     config.BaseURL,
		Model:       config.Model,
		MaxTokens:   &maxTokens,
		Temperature: &temperature,
		Timeout:     config.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI chat model: %w", err)
	}

	return &OpenAIClient{
		model:  chatModel,
		config: config,
	}, nil
}

// Complete issues a single chat-completion call and returns the reply text.
func (c *OpenAIClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	messages := []*schema.Message{
		schema.SystemMessage(system),
		schema.UserMessage(prompt),
	}

	reply, err := c.model.Generate(ctx, messages)
	if err != nil {
		return "", &ProviderError{Provider: ProviderOpenAI, Err: err}
	}
	if reply == nil || reply.Content == "" {
		return "", &ProviderError{Provider: ProviderOpenAI, Err: fmt.Errorf("empty completion")}
	}

	return reply.Content, nil
}

// Model returns the configured model identifier.
func (c *OpenAIClient) Model() string {
	return c.config.Model
}

// Close releases resources held by the client.
func (c *OpenAIClient) Close() error {
	return nil
}
