package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-tailor/internal/config"
	"github.com/jonathan/cv-tailor/internal/llm"
	"github.com/jonathan/cv-tailor/internal/pipeline"
	"github.com/jonathan/cv-tailor/internal/store"
)

// openStore builds the artifact store for a command invocation. A configured
// database URL selects the Postgres store; otherwise artifacts live on disk
// under the data directory. The returned closer is a no-op for file stores.
func openStore(ctx context.Context, cfg *config.Config) (store.Store, func(), error) {
	schemaDir := store.ResolveSchemaDir()

	databaseURL := cfg.DatabaseURL
	if databaseURL == "" {
		databaseURL = os.Getenv("DATABASE_URL")
	}
	if databaseURL != "" {
		pg, err := store.ConnectPostgres(ctx, databaseURL, schemaDir)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return pg, pg.Close, nil
	}

	root := cfg.DataDir
	if root == "" {
		root = "."
	}
	return store.NewFileStore(root, schemaDir), func() {}, nil
}

// buildOverride builds the extraction override for a command invocation.
// Without an API key the heuristic extractor runs alone.
func buildOverride(ctx context.Context, cfg *config.Config) (llm.Override, func(), error) {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return llm.NoopOverride{}, func() {}, nil
	}

	gemini, err := llm.NewGeminiOverride(ctx, apiKey)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize Gemini override: %w", err)
	}
	return gemini, func() { _ = gemini.Close() }, nil
}

// pipelineOptions assembles pipeline collaborators from a resolved config.
func pipelineOptions(ctx context.Context, cfg *config.Config) (pipeline.Options, func(), error) {
	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return pipeline.Options{}, nil, err
	}

	override, closeOverride, err := buildOverride(ctx, cfg)
	if err != nil {
		closeStore()
		return pipeline.Options{}, nil, err
	}

	opts := pipeline.Options{
		Store:        st,
		Override:     override,
		TemplatePath: cfg.Template,
	}
	cleanup := func() {
		closeOverride()
		closeStore()
	}
	return opts, cleanup, nil
}

// defaultConfig supplies fallback values for fields left unset by both the
// config file and the CLI flags.
var defaultConfig = config.Config{
	Template: pipeline.DefaultTemplatePath,
	DataDir:  ".",
}

// loadMergedConfig loads the optional config file, applies explicitly set
// CLI flag values over it and fills remaining gaps from defaults. Flag
// values win over config file values, which win over defaults.
func loadMergedConfig(configPath string, apply func(cfg *config.Config)) (*config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	apply(&cfg)
	cfg = cfg.MergeWithDefaults(defaultConfig)
	return &cfg, nil
}
