package config

import (
	"os"
	"strings"

	"contentdesk/pkg/logger"
)

type Config struct {
	Port          string
	AccessCode    string
	SessionSecret string
	SeedDemoData  bool
}

// Load collects configuration from environment variables. Callers are
// expected to have run godotenv.Load() first so a local .env file works.
func Load() Config {
	cfg := Config{
		Port:          strings.TrimSpace(os.Getenv("PORT")),
		AccessCode:    strings.TrimSpace(os.Getenv("ACCESS_CODE")),
		SessionSecret: strings.TrimSpace(os.Getenv("SESSION_SECRET")),
		SeedDemoData:  strings.EqualFold(strings.TrimSpace(os.Getenv("CONTENT_SEED")), "true"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.AccessCode == "" {
		logger.Sugar.Fatal("ACCESS_CODE environment variable not set")
	}
	if cfg.SessionSecret == "" {
		logger.Sugar.Fatal("SESSION_SECRET environment variable not set")
	}
	return cfg
}
