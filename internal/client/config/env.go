package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names. A .env file in the working directory is loaded
// first, without overriding variables already set in the process environment.
const (
	EnvAPIBaseURL   = "STOREDASH_API_URL"
	EnvLoginPath    = "STOREDASH_LOGIN_PATH"
	EnvTimeout      = "STOREDASH_REQUEST_TIMEOUT"
	EnvCacheDSN     = "STOREDASH_SESSION_CACHE_DSN"
	EnvCacheEnabled = "STOREDASH_SESSION_CACHE_ENABLED"
)

// parseEnv overlays Config with values from the environment. Unset or
// unparseable variables leave the current value alone.
func parseEnv(cfg *Config) {
	// missing .env is fine, real env vars still apply
	_ = godotenv.Load()

	if v := os.Getenv(EnvAPIBaseURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(EnvLoginPath); v != "" {
		cfg.LoginPath = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv(EnvCacheDSN); v != "" {
		cfg.SessionCacheDSN = v
	}
	if v := os.Getenv(EnvCacheEnabled); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SessionCacheEnabled = b
		}
	}
}
