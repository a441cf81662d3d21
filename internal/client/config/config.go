// Package config assembles the client's runtime settings from defaults,
// the environment (including a .env file), an optional JSON file, and
// command-line flags. Later sources take precedence over earlier ones.
package config

// Config holds runtime settings for the moonui client.
//
// Fields:
//   - DBPath: filesystem path of the local SQLite database.
//   - APIBaseURL: base URL of the backend the HTTP client talks to.
//   - SentryDSN: crash-reporting DSN; empty disables reporting.
//   - Environment: deployment environment tag attached to reports.
type Config struct {
	DBPath      string
	APIBaseURL  string
	SentryDSN   string
	Environment string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "moonui.db"
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.SentryDSN = ""
	c.Environment = "development"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, a JSON file (if present), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
