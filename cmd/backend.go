package cmd

import (
	"github.com/praxisprep/praxis/internal/api"
	"github.com/praxisprep/praxis/internal/auth"
	"github.com/praxisprep/praxis/internal/config"
)

// newBackend builds the API client from config, attaching the bearer
// token when PRAXIS_TOKEN is set.
func newBackend(cfg config.Config) *api.Client {
	return api.New(api.Config{
		BaseURL:       cfg.API.BaseURL,
		Timeout:       cfg.API.Timeout,
		RetryAttempts: cfg.API.RetryAttempts,
		RetryDelay:    cfg.API.RetryDelay,
		Token:         auth.TokenFromEnv().Provider(),
	})
}
