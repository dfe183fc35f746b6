package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://localhost:8000/api", c.APIBaseURL)
	assert.Equal(t, "/auth/login", c.LoginPath)
	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.Equal(t, "storedash.db", c.SessionCacheDSN)
	assert.True(t, c.SessionCacheEnabled)
}

func TestParseEnv(t *testing.T) {
	t.Setenv(EnvAPIBaseURL, "https://api.example.com/api")
	t.Setenv(EnvTimeout, "30s")
	t.Setenv(EnvCacheEnabled, "false")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, "https://api.example.com/api", c.APIBaseURL)
	assert.Equal(t, 30*time.Second, c.RequestTimeout)
	assert.False(t, c.SessionCacheEnabled)
	// untouched field keeps its default
	assert.Equal(t, "/auth/login", c.LoginPath)
}

func TestParseEnv_IgnoresUnparseable(t *testing.T) {
	t.Setenv(EnvTimeout, "soon")
	t.Setenv(EnvCacheEnabled, "maybe")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, 15*time.Second, c.RequestTimeout)
	assert.True(t, c.SessionCacheEnabled)
}

func TestParseJSON(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.WriteString(`{
		"api_base_url": "https://staging.example.com/api",
		"request_timeout": "45s",
		"session_cache_enabled": false
	}`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog", "-c", f.Name()}

	var c Config
	c.LoadDefaults()
	parseJSON(&c)

	assert.Equal(t, "https://staging.example.com/api", c.APIBaseURL)
	assert.Equal(t, 45*time.Second, c.RequestTimeout)
	assert.False(t, c.SessionCacheEnabled)
	assert.Equal(t, "storedash.db", c.SessionCacheDSN)
}

func TestLoad_UsesDefaultsBeforeParsing(t *testing.T) {
	oldArgs := os.Args
	t.Cleanup(func() { os.Args = oldArgs })
	os.Args = []string{"prog"}

	cfg := Load()

	require.NotNil(t, cfg, "Load must not return nil")
	assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
}
