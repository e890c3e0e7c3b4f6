package config

import (
	"encoding/json"
	"os"

	"github.com/alexkarpovs/lockbox/internal/flagx"
	"github.com/alexkarpovs/lockbox/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. It relies
// on timex.Duration so JSON can specify the clipboard delay either as a
// string like "30s" or as integer nanoseconds.
type JsonConfig struct {
	DBPath              string         `json:"db_path"`
	ClipboardClearDelay timex.Duration `json:"clipboard_clear_delay"`
	MaxLoginAttempts    int            `json:"max_login_attempts"`
}

// parseJson overlays Config with values loaded from the JSON file named
// by the -c/-config flag. Absent flag means no JSON is loaded. Only
// fields present in the file override the current values.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DBPath != "" {
		cfg.DBPath = jc.DBPath
	}
	if jc.ClipboardClearDelay.Duration > 0 {
		cfg.ClipboardClearDelay = jc.ClipboardClearDelay.Duration
	}
	if jc.MaxLoginAttempts > 0 {
		cfg.MaxLoginAttempts = jc.MaxLoginAttempts
	}
}
