// Package llm provides centralized LLM configuration and client abstractions.
// The generation pipeline talks to a single chat-completion provider; this
// package keeps provider selection and tuning out of the pipeline itself.
package llm

import (
	"os"
	"strconv"
	"time"
)

// Provider represents an LLM provider.
type Provider string

// Provider constants define supported LLM providers.
const (
	// ProviderOpenAI is any OpenAI-compatible chat-completion endpoint (default).
	ProviderOpenAI Provider = "openai"
	// ProviderGemini is the Google Gemini provider.
	ProviderGemini Provider = "gemini"
)

// Config holds the model configuration for the application.
type Config struct {
	Provider    Provider
	Model       string
	BaseURL     string // optional override for OpenAI-compatible endpoints
	Temperature float32
	MaxTokens   int
	Timeout     time.Duration
}

// DefaultConfig returns the default configuration: OpenAI chat completions
// with the parameters the project generator has always used.
func DefaultConfig() *Config {
	return &Config{
		Provider:    ProviderOpenAI,
		Model:       "gpt-3.5-turbo",
		Temperature: 0.7,
		MaxTokens:   2500,
		Timeout:     60 * time.Second,
	}
}

// LoadConfig builds a Config from environment variables, falling back to
// defaults for anything unset. Recognized variables: LLM_PROVIDER, LLM_MODEL,
// LLM_BASE_URL, LLM_TIMEOUT_SECONDS.
func LoadConfig() *Config {
	cfg := DefaultConfig()

	if provider := os.Getenv("LLM_PROVIDER"); provider != "" {
		cfg.Provider = Provider(provider)
		if cfg.Provider == ProviderGemini {
			cfg.Model = "gemini-2.5-flash"
		}
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		cfg.Model = model
	}
	if baseURL := os.Getenv("LLM_BASE_URL"); baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if timeoutStr := os.Getenv("LLM_TIMEOUT_SECONDS"); timeoutStr != "" {
		if seconds, err := strconv.Atoi(timeoutStr); err == nil && seconds > 0 {
			cfg.Timeout = time.Duration(seconds) * time.Second
		}
	}

	return cfg
}
