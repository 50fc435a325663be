package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/pipeline"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Validate and store a user profile",
	Long:  "Validate a user profile JSON file and persist it as the shared profile used by all tailoring plans.",
	RunE:  runProfile,
}

var (
	profileConfigPath  string
	profileFile        string
	profileDataDir     string
	profileDatabaseURL string
)

func init() {
	profileCmd.Flags().StringVar(&profileConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	profileCmd.Flags().StringVarP(&profileFile, "profile", "p", "", "Path to user profile JSON file")
	profileCmd.Flags().StringVar(&profileDataDir, "data-dir", "", "Root directory for stored artifacts")
	profileCmd.Flags().StringVar(&profileDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(profileConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("profile") {
			cfg.Profile = profileFile
		}
		if cmd.Flags().Changed("data-dir") {
			cfg.DataDir = profileDataDir
		}
		if cmd.Flags().Changed("db-url") {
			cfg.DatabaseURL = profileDatabaseURL
		}
	})
	if err != nil {
		return err
	}

	if cfg.Profile == "" {
		return fmt.Errorf("--profile is required (via flag or config)")
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

	profile, err := pipeline.SaveProfile(ctx, opts, payload)
	if err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully saved profile for %s\n", profile.FullName)

	return nil
}
