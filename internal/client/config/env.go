package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment. A .env
// file in the working directory is loaded first, without overriding
// variables already set in the environment. Missing file is not an error.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("MOONUI_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("MOONUI_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("MOONUI_SENTRY_DSN"); v != "" {
		cfg.SentryDSN = v
	}
	if v := os.Getenv("MOONUI_ENV"); v != "" {
		cfg.Environment = v
	}
}
