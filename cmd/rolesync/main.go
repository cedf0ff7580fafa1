package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/joho/godotenv"

	"rolesync/internal/config"
	"rolesync/internal/greenhouse"
	"rolesync/internal/httpx"
	"rolesync/internal/monday"
	"rolesync/internal/pipeline"
	"rolesync/internal/secrets"
)

func main() {
	// local dev convenience; missing .env is fine
	_ = godotenv.Load()

	dataDir := os.Getenv("ROLESYNC_DATA_DIR")
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		log.Fatal(err)
	}

	defaultCfgPath := filepath.Join("config", "config.yml")
	userCfgPath, err := config.EnsureUserConfig(dataDir, defaultCfgPath)
	if err != nil {
		log.Fatalf("config bootstrap failed: %v", err)
	}

	cfg, err := config.Load(userCfgPath)
	if err != nil {
		log.Fatalf("config load failed (%s): %v", userCfgPath, err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("%v", err)
	}
	for _, w := range config.Warnings(cfg) {
		log.Printf("[config] warning: %s", w)
	}

	// two overlapping runs would double-create every board item
	lock := flock.New(filepath.Join(dataDir, "rolesync.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		log.Fatalf("run lock: %v", err)
	}
	if !locked {
		log.Fatalf("another sync run is already in progress")
	}
	defer lock.Unlock()

	ghKey, err := secrets.Token(secrets.GreenhouseAccount, "GREENHOUSE_API_KEY", cfg.Greenhouse.APIKey)
	if err != nil {
		log.Fatalf("greenhouse credentials: %v", err)
	}
	mdKey, err := secrets.Token(secrets.MondayAccount, "MONDAY_API_KEY", cfg.Monday.APIKey)
	if err != nil {
		log.Fatalf("monday credentials: %v", err)
	}

	hc := httpx.New(httpx.Config{
		Timeout:    time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second,
		MaxRetries: cfg.HTTP.MaxRetries,
		Backoff:    time.Duration(cfg.HTTP.BackoffMillis) * time.Millisecond,
		HostRPS:    cfg.HTTP.HostRPS,
		HostBurst:  cfg.HTTP.HostBurst,
	})

	gh := greenhouse.New(greenhouse.Config{
		BaseURL: cfg.Greenhouse.BaseURL,
		APIKey:  ghKey,
		PerPage: cfg.Greenhouse.PerPage,
	}, hc)

	md := monday.New(monday.Config{
		APIURL:  cfg.Monday.APIURL,
		APIKey:  mdKey,
		BoardID: cfg.Monday.BoardID,
	}, hc)

	pipeline.Run(context.Background(), gh, md, cfg.App.Concurrency)
}
