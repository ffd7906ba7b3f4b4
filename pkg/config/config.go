// Package config provides configuration management for the ledger tool.
// It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Ledger LedgerConfig
	Debug  bool
}

// LedgerConfig represents ledger-related configuration.
type LedgerConfig struct {
	File        string
	DBPath      string
	CategoryMap string
	Currency    string
}

// Load loads configuration from environment variables.
// It automatically loads .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	// Load .env file
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		Ledger: LedgerConfig{
			File:        getEnvOrDefault("MUHASEBE_LEDGER_FILE", "ledger.json"),
			DBPath:      os.Getenv("MUHASEBE_DB_PATH"),
			CategoryMap: os.Getenv("MUHASEBE_CATEGORY_MAP"),
			Currency:    getEnvOrDefault("MUHASEBE_CURRENCY", "TL"),
		},
		Debug: os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate validates the configuration.
// It checks if all named fields are set.
func (c *Config) Validate(required ...string) error {
	var missing []string

	for _, name := range required {
		var value string
		switch name {
		case "file":
			value = c.Ledger.File
		case "currency":
			value = c.Ledger.Currency
		case "categoryMap":
			value = c.Ledger.CategoryMap
		default:
			return fmt.Errorf("unknown config field: %s", name)
		}

		if value == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	return nil
}

// getEnvOrDefault returns the environment variable value or a default.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
