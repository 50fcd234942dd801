package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables take precedence over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("RAPIHIN_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("RAPIHIN_OUTPUT_DIR"); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv("RAPIHIN_DB_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("RAPIHIN_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("RAPIHIN_FORMAT_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.FormatTimeout = d
		}
	}
}
