// Package config loads runtime settings for the Lockbox CLI. Sources are
// layered: built-in defaults, then a .env file / environment variables,
// then a JSON config file (-c/-config), then command-line flags. Later
// sources take precedence.
package config

import "time"

// Config holds runtime settings for the Lockbox CLI.
//
// Fields:
//   - DBPath: location of the vault database file.
//   - ClipboardClearDelay: how long a copied secret stays on the
//     clipboard before it is cleared.
//   - MaxLoginAttempts: failed-unlock budget before the vault
//     self-destructs.
type Config struct {
	DBPath              string
	ClipboardClearDelay time.Duration
	MaxLoginAttempts    int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "lockbox.db"
	c.ClipboardClearDelay = 30 * time.Second
	c.MaxLoginAttempts = 10
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, the JSON file (if present), and command-line
// flags (if present).
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
