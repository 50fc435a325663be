package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/fetch"
	"github.com/jonathan/cv-tailor/internal/observability"
	"github.com/jonathan/cv-tailor/internal/pipeline"
	"github.com/spf13/cobra"
)

var runCommand = &cobra.Command{
	Use:   "run",
	Short: "Run the full tailoring pipeline end-to-end",
	Long: `Orchestrates the entire tailoring process: parsing -> profile storage -> planning -> rendering -> diffing.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runPipelineCmd,
}

var (
	runConfigPath  string
	runJDFile      string
	runJDURL       string
	runProfileFile string
	runTemplate    string
	runDataDir     string
	runAPIKey      string
	runDatabaseURL string
	runVerbose     bool
)

func init() {
	// Config file flag (processed first)
	runCommand.Flags().StringVar(&runConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	runCommand.Flags().StringVar(&runJDFile, "jd", "", "Path to job description text file (mutually exclusive with --jd-url)")
	runCommand.Flags().StringVar(&runJDURL, "jd-url", "", "URL to fetch the job posting from (mutually exclusive with --jd)")
	runCommand.Flags().StringVarP(&runProfileFile, "profile", "p", "", "Path to user profile JSON file")
	runCommand.Flags().StringVarP(&runTemplate, "template", "t", "", "Path to LaTeX template")
	runCommand.Flags().StringVar(&runDataDir, "data-dir", "", "Root directory for stored artifacts")
	runCommand.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Print detailed debug information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	runCommand.Flags().StringVar(&runAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for artifact persistence
	runCommand.Flags().StringVar(&runDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(runCommand)
}

func runPipelineCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(runConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("jd") {
			cfg.JD = runJDFile
		}
		if cmd.Flags().Changed("jd-url") {
			cfg.JDURL = runJDURL
		}
		if cmd.Flags().Changed("profile") {
			cfg.Profile = runProfileFile
		}
		if cmd.Flags().Changed("template") {
			cfg.Template = runTemplate
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = runDataDir
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = runAPIKey
		}
		if cmd.Flags().Changed("db-url") {
			cfg.DatabaseURL = runDatabaseURL
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = runVerbose
		}
	})
	if err != nil {
		return err
	}

	if cfg.JD == "" && cfg.JDURL == "" {
		return fmt.Errorf("either --jd or --jd-url must be provided (via flag or config)")
	}
	if cfg.JD != "" && cfg.JDURL != "" {
		return fmt.Errorf("--jd and --jd-url are mutually exclusive; provide only one")
	}
	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required (via flag or config)")
	}

	var jdText string
	if cfg.JD != "" {
		content, err := os.ReadFile(cfg.JD)
		if err != nil {
			return fmt.Errorf("failed to read job description file: %w", err)
		}
		jdText = string(content)
	} else {
		jdText, err = fetch.JobPosting(ctx, cfg.JDURL, fetch.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to fetch job posting: %w", err)
		}
	}

	payload, err := os.ReadFile(cfg.Profile)
	if err != nil {
		return fmt.Errorf("failed to read profile file: %w", err)
	}

	opts, cleanup, err := pipelineOptions(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	printer := observability.NewPrinter(os.Stdout)

	spec, err := pipeline.IngestJob(ctx, opts, jdText)
	if err != nil {
		return fmt.Errorf("failed to parse job description: %w", err)
	}
	if cfg.Verbose {
		printer.PrintJobSpec(spec)
	}

	if _, err := pipeline.SaveProfile(ctx, opts, payload); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	plan, err := pipeline.BuildPlan(ctx, opts, spec.ID, nil)
	if err != nil {
		return fmt.Errorf("failed to build tailoring plan: %w", err)
	}
	if cfg.Verbose {
		printer.PrintTailoringPlan(plan)
	}

	result, err := pipeline.GenerateCV(ctx, opts, spec.ID)
	if err != nil {
		return fmt.Errorf("failed to generate CV: %w", err)
	}
	if cfg.Verbose {
		printer.PrintArtifact(result.Artifact)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Pipeline complete for %s\n", spec.ID)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", result.Artifact.OutputTexPath)
	_, _ = fmt.Fprintf(os.Stdout, "Diff:   %s\n", result.Artifact.DiffReportPath)
	if len(plan.Questions) > 0 {
		_, _ = fmt.Fprintf(os.Stdout, "Open questions:\n")
		for _, q := range plan.Questions {
			_, _ = fmt.Fprintf(os.Stdout, "  - %s\n", q)
		}
	}

	return nil
}
