package config

import (
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Usage.FreeDailyLimit != 5 {
		t.Errorf("FreeDailyLimit = %d, want 5", cfg.Usage.FreeDailyLimit)
	}
	if cfg.API.Timeout != 5*time.Second {
		t.Errorf("Timeout = %v, want 5s", cfg.API.Timeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PRAXIS_API_BASE_URL", "https://staging.praxis.test/")
	t.Setenv("PRAXIS_API_TIMEOUT", "10s")
	t.Setenv("PRAXIS_API_RETRY_ATTEMPTS", "3")
	t.Setenv("PRAXIS_FREE_DAILY_LIMIT", "7")
	t.Setenv("PRAXIS_PREMIUM_USERS", "a@example.com, b@example.com,")

	cfg := Load()

	if cfg.API.BaseURL != "https://staging.praxis.test" {
		t.Errorf("BaseURL = %q, trailing slash should be stripped", cfg.API.BaseURL)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", cfg.API.Timeout)
	}
	if cfg.API.RetryAttempts != 3 {
		t.Errorf("RetryAttempts = %d, want 3", cfg.API.RetryAttempts)
	}
	if cfg.Usage.FreeDailyLimit != 7 {
		t.Errorf("FreeDailyLimit = %d, want 7", cfg.Usage.FreeDailyLimit)
	}
	if len(cfg.Usage.PremiumUsers) != 2 {
		t.Fatalf("PremiumUsers = %v, want 2 entries", cfg.Usage.PremiumUsers)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("PRAXIS_API_TIMEOUT", "soon")
	t.Setenv("PRAXIS_API_RETRY_ATTEMPTS", "-2")
	t.Setenv("PRAXIS_FREE_DAILY_LIMIT", "many")

	cfg := Load()
	def := Default()

	if cfg.API.Timeout != def.API.Timeout {
		t.Errorf("Timeout = %v, want default %v", cfg.API.Timeout, def.API.Timeout)
	}
	if cfg.API.RetryAttempts != def.API.RetryAttempts {
		t.Errorf("RetryAttempts = %d, want default %d", cfg.API.RetryAttempts, def.API.RetryAttempts)
	}
	if cfg.Usage.FreeDailyLimit != def.Usage.FreeDailyLimit {
		t.Errorf("FreeDailyLimit = %d, want default %d", cfg.Usage.FreeDailyLimit, def.Usage.FreeDailyLimit)
	}
}

func TestIsPremiumExactMatch(t *testing.T) {
	u := UsageConfig{PremiumUsers: []string{"topper@example.com"}}

	tests := []struct {
		email string
		want  bool
	}{
		{"topper@example.com", true},
		{"Topper@example.com", false}, // case-sensitive
		{"topper@example.com ", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := u.IsPremium(tt.email); got != tt.want {
			t.Errorf("IsPremium(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}
