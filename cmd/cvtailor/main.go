// Package main provides the entry point for the cv-tailor CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvtailor",
	Short: "Deterministic CV tailoring pipeline",
	Long:  "cv-tailor parses job descriptions, scores them against a user profile, builds a tailoring plan and renders a tailored LaTeX CV with a diff report against the untailored baseline.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
