package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// ResultsDir is the session-level results directory
	ResultsDir string
	// ResultsFile is the collected results file name inside ResultsDir
	ResultsFile string
	// TemplateDir optionally overrides the packaged HTML report assets
	TemplateDir string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	ResultsDir  string
	TemplateDir string
	TextOnly    bool
	HTMLOnly    bool
	Stdout      bool
}

// New creates a new Config with defaults
func New() *Config {
	return &Config{
		ResultsDir:  DefaultResultsDir,
		ResultsFile: DefaultResultsFile,
	}
}

// Load creates a config, applies environment overrides from a .env file in
// the working directory (if present) and then flag overrides on top.
func Load(flags Flags) *Config {
	cfg := New()

	// Missing .env is fine; explicit settings win over the environment.
	_ = godotenv.Load(EnvFile)
	if dir := os.Getenv(EnvResultsDir); dir != "" {
		cfg.ResultsDir = dir
	}
	if dir := os.Getenv(EnvTemplateDir); dir != "" {
		cfg.TemplateDir = dir
	}

	cfg.Flags = flags
	if flags.ResultsDir != "" {
		cfg.ResultsDir = flags.ResultsDir
	}
	if flags.TemplateDir != "" {
		cfg.TemplateDir = flags.TemplateDir
	}
	return cfg
}

// GetResultsDir resolves the session results directory to an absolute path
// so every command reads and writes the same location regardless of cwd.
func (c *Config) GetResultsDir() string {
	if abs, err := filepath.Abs(c.ResultsDir); err == nil {
		return abs
	}
	return c.ResultsDir
}

// GetResultsFilePath returns the full path to the collected results file.
func (c *Config) GetResultsFilePath() string {
	return filepath.Join(c.GetResultsDir(), c.ResultsFile)
}
