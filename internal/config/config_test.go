package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"jd_url": "https://example.com/job",
		"data_dir": "/tmp/cv-tailor",
		"api_key": "test-key",
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://example.com/job", cfg.JDURL)
	assert.Equal(t, "/tmp/cv-tailor", cfg.DataDir)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_MutuallyExclusive(t *testing.T) {
	cfg := &Config{
		JD:    "jd.txt",
		JDURL: "https://example.com/job",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_MissingTemplate(t *testing.T) {
	cfg := &Config{
		Template: filepath.Join(t.TempDir(), "missing.tex"),
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "template file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	jdFile := filepath.Join(t.TempDir(), "jd.txt")
	require.NoError(t, os.WriteFile(jdFile, []byte("Senior Engineer"), 0644))

	cfg := &Config{
		JD:      jdFile,
		DataDir: "/tmp/cv-tailor",
	}

	err := cfg.Validate()
	assert.NoError(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Template:    "default.tex",
		DataDir:     "/var/cv-tailor",
		APIKey:      "default-key",
		DatabaseURL: "postgres://localhost/cv",
	}

	partial := Config{
		DataDir: "/custom",
		JDURL:   "https://example.com/job",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "/custom", merged.DataDir)
	assert.Equal(t, "https://example.com/job", merged.JDURL)

	// Default values should fill in empty fields
	assert.Equal(t, "default.tex", merged.Template)
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "postgres://localhost/cv", merged.DatabaseURL)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		JD:      "jd.txt",
		DataDir: "/data",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "jd.txt", merged.JD)
	assert.Equal(t, "/data", merged.DataDir)
}
