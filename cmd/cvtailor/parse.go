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

var parseCmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a job description into a structured job spec",
	Long:  "Parse a job description (from a text file or a URL) into a structured job spec and persist it under its deterministic job ID.",
	RunE:  runParse,
}

var (
	parseConfigPath  string
	parseJDFile      string
	parseJDURL       string
	parseDataDir     string
	parseAPIKey      string
	parseDatabaseURL string
	parseVerbose     bool
)

func init() {
	parseCmd.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	parseCmd.Flags().StringVar(&parseJDFile, "jd", "", "Path to job description text file (mutually exclusive with --jd-url)")
	parseCmd.Flags().StringVar(&parseJDURL, "jd-url", "", "URL to fetch the job posting from (mutually exclusive with --jd)")
	parseCmd.Flags().StringVar(&parseDataDir, "data-dir", "", "Root directory for stored artifacts")
	parseCmd.Flags().StringVar(&parseAPIKey, "api-key", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	parseCmd.Flags().StringVar(&parseDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	parseCmd.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(parseConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("jd") {
			cfg.JD = parseJDFile
		}
		if cmd.Flags().Changed("jd-url") {
			cfg.JDURL = parseJDURL
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = parseDataDir
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = parseAPIKey
		}
		if cmd.Flags().Changed("db-url") {
			cfg.DatabaseURL = parseDatabaseURL
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = parseVerbose
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

	opts, cleanup, err := pipelineOptions(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	spec, err := pipeline.IngestJob(ctx, opts, jdText)
	if err != nil {
		return fmt.Errorf("failed to parse job description: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintJobSpec(spec)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully parsed job description\n")
	_, _ = fmt.Fprintf(os.Stdout, "Job ID: %s\n", spec.ID)

	return nil
}
