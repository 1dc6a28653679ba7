package llm

import (
	"context"
	"fmt"
)

// Client is an abstraction over chat-completion providers.
type Client interface {
	// Complete issues a single chat-completion call with a system instruction
	// and a user prompt, and returns the raw text of the model's reply.
	// No retries are performed; failures are returned as *ProviderError.
	Complete(ctx context.Context, system, prompt string) (string, error)
	// Model returns the configured model identifier.
	Model() string
	// Close releases any resources held by the client.
	Close() error
}

// ProviderError wraps a failure from the upstream chat-completion provider:
// network errors, authentication failures, rate limits, or malformed
// responses. Callers are expected to absorb it rather than surface it to end
// users.
type ProviderError struct {
	Provider Provider
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s provider error: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewClient creates a new LLM client based on configuration. The API key is
// passed explicitly so no client is ever constructed from ambient process
// state at import time.
func NewClient(ctx context.Context, config *Config, apiKey string) (Client, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config, apiKey)
	case ProviderOpenAI:
		return NewOpenAIClient(ctx, config, apiKey)
	default:
		return NewOpenAIClient(ctx, config, apiKey)
	}
}
