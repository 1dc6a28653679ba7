// Package main provides the entry point for the DevProject Generator HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "devgen",
	Short: "DevProject Generator HTTP API Server",
	Long:  "DevProject Generator produces tailored portfolio project ideas for developers from their skill profile, with job search and saved favorites, via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
