package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Resource paths
	DataDir string

	// History paging
	HistoryPageSize int

	// Logging
	LogLevel string

	// Environment
	Environment string // "development" or "production"
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		// Only return error if file exists but couldn't be loaded
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Get working directory for resource paths
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	pageSize, err := strconv.Atoi(getEnvWithDefault("HISTORY_PAGE_SIZE", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid HISTORY_PAGE_SIZE: %w", err)
	}

	cfg := &Config{
		DataDir:         getEnvWithDefault("DATA_DIR", filepath.Join(wd, "data")),
		HistoryPageSize: pageSize,
		LogLevel:        getEnvWithDefault("LOG_LEVEL", "INFO"),
		Environment:     getEnvWithDefault("ENVIRONMENT", "development"),
	}

	// Validate required fields
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	// Create data directory if it doesn't exist
	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// validate checks if all required configuration is present
func (c *Config) validate() error {
	if c.HistoryPageSize < 1 {
		return fmt.Errorf("HISTORY_PAGE_SIZE must be at least 1")
	}
	return nil
}

// DBPath returns the path of the active database file
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "dartkeeper.db")
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// getEnvWithDefault returns environment variable value or default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
