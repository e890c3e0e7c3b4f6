package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is
// loaded first (if present) so the variables can live next to the vault.
const (
	envDBPath              = "LOCKBOX_DB_PATH"
	envClipboardClearDelay = "LOCKBOX_CLIPBOARD_CLEAR_DELAY"
	envMaxLoginAttempts    = "LOCKBOX_MAX_LOGIN_ATTEMPTS"
)

func parseEnv(cfg *Config) {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	if v := os.Getenv(envDBPath); v != "" {
		cfg.DBPath = v
	}

	if v := os.Getenv(envClipboardClearDelay); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ClipboardClearDelay = d
		}
	}

	if v := os.Getenv(envMaxLoginAttempts); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxLoginAttempts = n
		}
	}
}
