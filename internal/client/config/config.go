// Package config assembles the client's runtime settings from defaults, the
// environment (.env aware), an optional JSON file, and command-line flags,
// in that order: later sources win.
package config

import "time"

// Config holds runtime settings for the storedash client.
//
// Fields:
//   - APIBaseURL: base URL of the backend HTTP API, e.g. "http://localhost:8000/api".
//   - LoginPath: where the shell sends the user when the session gate denies.
//   - RequestTimeout: client-side deadline for any single HTTP request.
//   - SessionCacheDSN: path of the local SQLite file holding the cached session.
//   - SessionCacheEnabled: when false the session lives only in memory.
type Config struct {
	APIBaseURL          string
	LoginPath           string
	RequestTimeout      time.Duration
	SessionCacheDSN     string
	SessionCacheEnabled bool
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.LoginPath = "/auth/login"
	c.RequestTimeout = 15 * time.Second
	c.SessionCacheDSN = "storedash.db"
	c.SessionCacheEnabled = true
}

// Load constructs a Config, applies defaults, then overlays values from the
// environment, a JSON file (if provided via -c/-config), and command-line
// flags. Later sources take precedence over earlier ones.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
