package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds everything the analyzer needs from the environment.
type Config struct {
	// Input
	OperationsPath string
	SettingsPath   string

	// Analysis
	InvestmentMonth string // YYYY-MM, empty disables the round-up calculation
	RoundingLimit   int64
	Category        string // empty disables the category report
	TopCount        int

	// Market data
	AlphaVantageAPIKey string // empty disables the market snapshot
	BaseCurrency       string
	HTTPTimeout        time.Duration
}

// Load builds a Config from environment variables with sensible defaults.
func Load() *Config {
	return &Config{
		OperationsPath: getEnv("OPERATIONS_FILE", "./data/operations.csv"),
		SettingsPath:   getEnv("USER_SETTINGS_FILE", "./user_settings.json"),

		InvestmentMonth: getEnv("INVESTMENT_MONTH", ""),
		RoundingLimit:   getEnvInt64("ROUNDING_LIMIT", 100),
		Category:        getEnv("REPORT_CATEGORY", ""),
		TopCount:        getEnvInt("TOP_TRANSACTIONS", 5),

		AlphaVantageAPIKey: getEnv("ALPHA_VANTAGE_API_KEY", ""),
		BaseCurrency:       getEnv("BASE_CURRENCY", "RUB"),
		HTTPTimeout:        getEnvDuration("HTTP_TIMEOUT", 8*time.Second),
	}
}

// Validate validates the configuration and returns an error if invalid.
func (c *Config) Validate() error {
	var problems []string

	if c.OperationsPath == "" {
		problems = append(problems, "operations file path must not be empty")
	}
	if c.RoundingLimit <= 0 {
		problems = append(problems, fmt.Sprintf("invalid rounding limit %d: must be positive", c.RoundingLimit))
	}
	if c.TopCount < 0 {
		problems = append(problems, fmt.Sprintf("invalid top transactions count %d: must not be negative", c.TopCount))
	}
	if c.BaseCurrency == "" {
		problems = append(problems, "base currency must not be empty")
	}
	if c.HTTPTimeout <= 0 {
		problems = append(problems, fmt.Sprintf("invalid http timeout %s: must be positive", c.HTTPTimeout))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration errors: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			return parsed
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}
