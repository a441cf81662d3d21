package config

import (
	"encoding/json"
	"os"

	"github.com/moonui/moonui/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Values are
// copied into the runtime Config afterwards; empty fields leave the
// existing value untouched.
type JsonConfig struct {
	DBPath      string `json:"db_path"`
	APIBaseURL  string `json:"api_base_url"`
	SentryDSN   string `json:"sentry_dsn"`
	Environment string `json:"environment"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// the -c or -config flag. Without the flag, nothing is loaded. Read or
// unmarshal errors panic; the entry point treats a broken explicit config
// file as fatal.
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
	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.SentryDSN != "" {
		cfg.SentryDSN = jc.SentryDSN
	}
	if jc.Environment != "" {
		cfg.Environment = jc.Environment
	}
}
