package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/storedash/internal/flagx"
	"github.com/dmitrijs2005/storedash/internal/timex"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. It relies on
// timex.Duration so JSON can specify the timeout either as a string like
// "15s" or as integer nanoseconds. Pointer fields distinguish "absent" from
// "set to the zero value".
type jsonConfig struct {
	APIBaseURL          *string         `json:"api_base_url"`
	LoginPath           *string         `json:"login_path"`
	RequestTimeout      *timex.Duration `json:"request_timeout"`
	SessionCacheDSN     *string         `json:"session_cache_dsn"`
	SessionCacheEnabled *bool           `json:"session_cache_enabled"`
}

// parseJSON overlays Config with values loaded from the JSON file named by
// the -c/-config flag. No flag means no JSON is loaded. Read or unmarshal
// errors panic, which surfaces misconfiguration immediately at startup.
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != nil {
		cfg.APIBaseURL = *jc.APIBaseURL
	}
	if jc.LoginPath != nil {
		cfg.LoginPath = *jc.LoginPath
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
	if jc.SessionCacheDSN != nil {
		cfg.SessionCacheDSN = *jc.SessionCacheDSN
	}
	if jc.SessionCacheEnabled != nil {
		cfg.SessionCacheEnabled = *jc.SessionCacheEnabled
	}
}
