package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/pipeline"
	"github.com/jonathan/cv-tailor/internal/types"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Build a tailoring plan for a parsed job",
	Long:  "Score the stored user profile against a parsed job spec and build a tailoring plan with requirement coverage, highlights, gaps and clarifying questions. Answers from a previous round can be merged in with --answers.",
	RunE:  runPlan,
}

var (
	planConfigPath  string
	planJobID       string
	planAnswersFile string
	planDataDir     string
	planDatabaseURL string
	planVerbose     bool
)

func init() {
	planCmd.Flags().StringVar(&planConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	planCmd.Flags().StringVar(&planJobID, "job-id", "", "Job ID returned by the parse command (required)")
	planCmd.Flags().StringVar(&planAnswersFile, "answers", "", "Path to JSON file with answers to clarifying questions")
	planCmd.Flags().StringVar(&planDataDir, "data-dir", "", "Root directory for stored artifacts")
	planCmd.Flags().StringVar(&planDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	planCmd.Flags().BoolVarP(&planVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(planConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = planDataDir
		}
		if cmd.Flags().Changed("db-url") {
			cfg.DatabaseURL = planDatabaseURL
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = planVerbose
		}
	})
	if err != nil {
		return err
	}

	if planJobID == "" {
		return fmt.Errorf("--job-id is required")
	}

	var answers []types.Answer
	if planAnswersFile != "" {
		content, err := os.ReadFile(planAnswersFile)
		if err != nil {
			return fmt.Errorf("failed to read answers file: %w", err)
		}
		if err := json.Unmarshal(content, &answers); err != nil {
			return fmt.Errorf("failed to parse answers JSON: %w", err)
		}
	}

	opts, cleanup, err := pipelineOptions(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	plan, err := pipeline.BuildPlan(ctx, opts, planJobID, answers)
	if err != nil {
		return fmt.Errorf("failed to build tailoring plan: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintTailoringPlan(plan)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully built tailoring plan for %s\n", plan.JobID)
	if len(plan.Questions) > 0 {
		_, _ = fmt.Fprintf(os.Stdout, "Open questions:\n")
		for _, q := range plan.Questions {
			_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", q)
		}
	}

	return nil
}
