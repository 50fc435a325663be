package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/pipeline"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the tailored LaTeX CV and diff report",
	Long:  "Render the tailored CV from the stored profile and tailoring plan, diff it against the untailored baseline and persist both outputs.",
	RunE:  runGenerate,
}

var (
	generateConfigPath  string
	generateJobID       string
	generateTemplate    string
	generateDataDir     string
	generateDatabaseURL string
	generateVerbose     bool
)

func init() {
	generateCmd.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCmd.Flags().StringVar(&generateJobID, "job-id", "", "Job ID returned by the parse command (required)")
	generateCmd.Flags().StringVarP(&generateTemplate, "template", "t", "", "Path to LaTeX template")
	generateCmd.Flags().StringVar(&generateDataDir, "data-dir", "", "Root directory for stored artifacts")
	generateCmd.Flags().StringVar(&generateDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(generateConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("template") {
			cfg.Template = generateTemplate
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = generateDataDir
		}
		if cmd.Flags().Changed("db-url") {
			cfg.DatabaseURL = generateDatabaseURL
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = generateVerbose
		}
	})
	if err != nil {
		return err
	}

	if generateJobID == "" {
		return fmt.Errorf("--job-id is required")
	}

	opts, cleanup, err := pipelineOptions(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	result, err := pipeline.GenerateCV(ctx, opts, generateJobID)
	if err != nil {
		return fmt.Errorf("failed to generate CV: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintArtifact(result.Artifact)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully generated CV\n")
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", result.Artifact.OutputTexPath)
	_, _ = fmt.Fprintf(os.Stdout, "Diff:   %s\n", result.Artifact.DiffReportPath)

	return nil
}
