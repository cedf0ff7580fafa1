package config

import (
	"errors"
	"fmt"
	"strings"
)

func Validate(cfg Config) error {
	var errs []string

	if strings.TrimSpace(cfg.Monday.BoardID) == "" {
		errs = append(errs, "monday.board_id is required")
	}
	if strings.TrimSpace(cfg.Greenhouse.BaseURL) == "" {
		errs = append(errs, "greenhouse.base_url is required")
	}
	if strings.TrimSpace(cfg.Monday.APIURL) == "" {
		errs = append(errs, "monday.api_url is required")
	}

	if cfg.App.Concurrency <= 0 {
		errs = append(errs, "app.concurrency must be > 0")
	}
	if cfg.Greenhouse.PerPage <= 0 || cfg.Greenhouse.PerPage > 500 {
		errs = append(errs, "greenhouse.per_page must be 1..500")
	}
	if cfg.HTTP.TimeoutSeconds < 0 {
		errs = append(errs, "http.timeout_seconds must be >= 0")
	}
	if cfg.HTTP.MaxRetries < 0 {
		errs = append(errs, "http.max_retries must be >= 0")
	}
	if cfg.HTTP.BackoffMillis < 0 {
		errs = append(errs, "http.backoff_ms must be >= 0")
	}
	if cfg.HTTP.HostRPS < 0 {
		errs = append(errs, "http.host_rps must be >= 0")
	}

	if len(errs) > 0 {
		return errors.New("config validation failed:\n- " + strings.Join(errs, "\n- "))
	}
	return nil
}

// API keys are resolved later (keychain/env first), so they are warnings
// here, not errors: an empty inline key is the normal state.
func Warnings(cfg Config) []string {
	var warns []string
	if cfg.App.Concurrency > 20 {
		warns = append(warns, fmt.Sprintf("app.concurrency is %d; the board API may rate-limit well before that", cfg.App.Concurrency))
	}
	if cfg.Greenhouse.APIKey != "" || cfg.Monday.APIKey != "" {
		warns = append(warns, "api keys are inlined in the config file; prefer the OS keychain or env vars")
	}
	return warns
}
