// Package config loads the console configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config represents the full application configuration surface.
type Config struct {
	Log  LogConfig
	POS  POSConfig
	Seed SeedConfig
}

// LogConfig holds logger options.
type LogConfig struct {
	Level       string
	Development bool
	Output      string
}

// POSConfig holds point-of-sale session options.
type POSConfig struct {
	Operator         string
	SaleNumberPrefix string
}

// SeedConfig controls the demo catalog loaded at start-up.
type SeedConfig struct {
	DemoData bool
}

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
			}
		}
	} else {
		// Missing .env files are fine; configuration may come from the environment.
		_ = godotenv.Load()
	}

	cfg := &Config{
		Log: LogConfig{
			Level:       getenvWithDefault("LOG_LEVEL", "info"),
			Development: getenvWithDefault("APP_ENV", "development") == "development",
			Output:      getenvWithDefault("LOG_OUTPUT", "stderr"),
		},
		POS: POSConfig{
			Operator:         getenvWithDefault("POS_OPERATOR", "console"),
			SaleNumberPrefix: strings.ToUpper(getenvWithDefault("SALE_NUMBER_PREFIX", "VD")),
		},
		Seed: SeedConfig{
			DemoData: getenvBool("SEED_DEMO_DATA", false),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures that required configuration fields are populated.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if strings.TrimSpace(c.POS.SaleNumberPrefix) == "" {
		return errors.New("SALE_NUMBER_PREFIX must not be empty")
	}
	if strings.Contains(c.POS.SaleNumberPrefix, "-") {
		return errors.New("SALE_NUMBER_PREFIX must not contain '-'")
	}
	if c.Log.Output == "" {
		return errors.New("LOG_OUTPUT must not be empty")
	}
	return nil
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	switch strings.ToLower(os.Getenv(key)) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return fallback
	}
}
