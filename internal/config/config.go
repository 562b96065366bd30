package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	API   APIConfig
	Usage UsageConfig
}

// APIConfig configures the remote Praxis backend client.
type APIConfig struct {
	// BaseURL is the root of the backend API, without a trailing slash.
	BaseURL string

	// Timeout is the per-attempt request timeout.
	Timeout time.Duration

	// RetryAttempts is the total number of attempts per request.
	RetryAttempts int

	// RetryDelay is the base backoff delay; attempt n waits delay×n.
	RetryDelay time.Duration
}

// UsageConfig configures the daily usage quota.
type UsageConfig struct {
	// FreeDailyLimit is the number of quota-consuming actions a free
	// user gets per calendar day.
	FreeDailyLimit int

	// PremiumUsers is the allow-list of emails exempt from the quota.
	// Matching is exact and case-sensitive.
	PremiumUsers []string
}

// Default returns a Config with the built-in defaults.
func Default() Config {
	return Config{
		API: APIConfig{
			BaseURL:       "https://praxis-ai.fly.dev",
			Timeout:       5 * time.Second,
			RetryAttempts: 1,
			RetryDelay:    500 * time.Millisecond,
		},
		Usage: UsageConfig{
			FreeDailyLimit: 5,
		},
	}
}

// Load builds a Config from the environment, falling back to defaults
// for unset values. A .env file in the working directory is read first
// when present.
func Load() Config {
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("PRAXIS_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("PRAXIS_API_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.API.Timeout = d
		}
	}
	if v := os.Getenv("PRAXIS_API_RETRY_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.API.RetryAttempts = n
		}
	}
	if v := os.Getenv("PRAXIS_API_RETRY_DELAY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.API.RetryDelay = d
		}
	}

	if v := os.Getenv("PRAXIS_FREE_DAILY_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			cfg.Usage.FreeDailyLimit = n
		}
	}
	if v := os.Getenv("PRAXIS_PREMIUM_USERS"); v != "" {
		for p := range strings.SplitSeq(v, ",") {
			p = strings.TrimSpace(p)
			if p != "" {
				cfg.Usage.PremiumUsers = append(cfg.Usage.PremiumUsers, p)
			}
		}
	}

	return cfg
}

// IsPremium reports whether email is on the premium allow-list.
func (c UsageConfig) IsPremium(email string) bool {
	for _, p := range c.PremiumUsers {
		if p == email {
			return true
		}
	}
	return false
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("API base URL must not be empty")
	}
	if c.API.RetryAttempts < 1 {
		return fmt.Errorf("API retry attempts must be at least 1, got %d", c.API.RetryAttempts)
	}
	if c.Usage.FreeDailyLimit < 0 {
		return fmt.Errorf("free daily limit must not be negative, got %d", c.Usage.FreeDailyLimit)
	}
	return nil
}
