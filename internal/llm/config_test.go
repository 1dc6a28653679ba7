package llm

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Provider != ProviderOpenAI {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.Model != "gpt-3.5-turbo" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Temperature != 0.7 {
		t.Errorf("Temperature = %v, want 0.7", cfg.Temperature)
	}
	if cfg.MaxTokens != 2500 {
		t.Errorf("MaxTokens = %d, want 2500", cfg.MaxTokens)
	}
	if cfg.Timeout != 60*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "")
	t.Setenv("LLM_MODEL", "")

	cfg := LoadConfig()
	if cfg.Provider != ProviderOpenAI || cfg.Model != "gpt-3.5-turbo" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
}

func TestLoadConfig_GeminiProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "gemini")

	cfg := LoadConfig()
	if cfg.Provider != ProviderGemini {
		t.Errorf("Provider = %q, want gemini", cfg.Provider)
	}
	if cfg.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %q, want provider default to switch too", cfg.Model)
	}
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("LLM_MODEL", "gpt-4o-mini")
	t.Setenv("LLM_BASE_URL", "http://localhost:11434/v1")
	t.Setenv("LLM_TIMEOUT_SECONDS", "15")

	cfg := LoadConfig()
	if cfg.Model != "gpt-4o-mini" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.BaseURL != "http://localhost:11434/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Timeout != 15*time.Second {
		t.Errorf("Timeout = %v", cfg.Timeout)
	}
}

func TestLoadConfig_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("LLM_TIMEOUT_SECONDS", "soon")

	cfg := LoadConfig()
	if cfg.Timeout != 60*time.Second {
		t.Errorf("invalid timeout should keep default, got %v", cfg.Timeout)
	}
}
