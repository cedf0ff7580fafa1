package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	App struct {
		DataDir     string `yaml:"data_dir"`
		Concurrency int    `yaml:"concurrency"` // push workers
	} `yaml:"app"`

	Greenhouse struct {
		BaseURL string `yaml:"base_url"`
		APIKey  string `yaml:"api_key"` // prefer keychain/env; inline is for local dev
		PerPage int    `yaml:"per_page"`
	} `yaml:"greenhouse"`

	Monday struct {
		APIURL  string `yaml:"api_url"`
		APIKey  string `yaml:"api_key"`
		BoardID string `yaml:"board_id"`
	} `yaml:"monday"`

	HTTP struct {
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		MaxRetries     int     `yaml:"max_retries"`
		BackoffMillis  int     `yaml:"backoff_ms"`
		HostRPS        float64 `yaml:"host_rps"` // 0 = no pacing
		HostBurst      int     `yaml:"host_burst"`
	} `yaml:"http"`
}

const (
	DefaultConcurrency = 5
	DefaultPerPage     = 100
	DefaultGreenhouse  = "https://harvest.greenhouse.io/v1"
	DefaultMonday      = "https://api.monday.com/v2"
)

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, err
	}
	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.App.Concurrency == 0 {
		cfg.App.Concurrency = DefaultConcurrency
	}
	if cfg.Greenhouse.BaseURL == "" {
		cfg.Greenhouse.BaseURL = DefaultGreenhouse
	}
	if cfg.Greenhouse.PerPage == 0 {
		cfg.Greenhouse.PerPage = DefaultPerPage
	}
	if cfg.Monday.APIURL == "" {
		cfg.Monday.APIURL = DefaultMonday
	}
	if cfg.HTTP.TimeoutSeconds == 0 {
		cfg.HTTP.TimeoutSeconds = 10
	}
	if cfg.HTTP.MaxRetries == 0 {
		cfg.HTTP.MaxRetries = 5
	}
	if cfg.HTTP.BackoffMillis == 0 {
		cfg.HTTP.BackoffMillis = 100
	}
}
