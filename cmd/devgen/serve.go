package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/devgen/devproject-generator/internal/llm"
	"github.com/devgen/devproject-generator/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for project generation, job search, and accounts.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	// Get database URL from environment
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	// Provider API key depends on the configured provider
	llmAPIKey, err := providerAPIKey()
	if err != nil {
		return err
	}

	// Jobs proxy key is optional; without it job search answers 502
	rapidAPIKey := os.Getenv("RAPIDAPI_KEY")

	cfg := server.Config{
		Port:        servePort,
		DatabaseURL: databaseURL,
		LLMAPIKey:   llmAPIKey,
		RapidAPIKey: rapidAPIKey,
	}

	srv, err := server.New(cfg)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// providerAPIKey resolves the completion provider's API key from the
// environment, matching the provider selected by LLM_PROVIDER.
func providerAPIKey() (string, error) {
	switch llm.LoadConfig().Provider {
	case llm.ProviderGemini:
		key := os.Getenv("GEMINI_API_KEY")
		if key == "" {
			return "", fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
		return key, nil
	default:
		key := os.Getenv("OPENAI_API_KEY")
		if key == "" {
			return "", fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
		return key, nil
	}
}
