package enginepages

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	var cfg SiteConfig
	cfg.setDefaults()
	assert.Equal(t, "Engine Pages", cfg.Name)
	assert.Equal(t, ":3000", cfg.Addr)
	assert.Equal(t, "data/enginepages.db", cfg.DatabasePath)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 2.0, cfg.SearchRate)
	assert.Equal(t, 5, cfg.SearchBurst)
}

func TestLoadConfigFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: Test Engines
url: https://test.example
addr: ":8080"
cache_ttl: 2m
search_burst: 9
tracing: true
`), 0o644))

	t.Setenv("ADDR", ":9090")
	t.Setenv("SEARCH_RATE", "0.5")
	t.Setenv("COOKIE_SECURE", "true")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Test Engines", cfg.Name)
	assert.Equal(t, "https://test.example", cfg.URL)
	assert.Equal(t, ":9090", cfg.Addr, "environment wins over the file")
	assert.Equal(t, 2*time.Minute, cfg.CacheTTL)
	assert.Equal(t, 9, cfg.SearchBurst)
	assert.Equal(t, 0.5, cfg.SearchRate)
	assert.True(t, cfg.Tracing)
	assert.True(t, cfg.CookieSecure)
}

func TestLoadConfigSearchBurstEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search_burst: 9\n"), 0o644))

	t.Setenv("SEARCH_BURST", "7")
	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.SearchBurst)

	t.Setenv("SEARCH_BURST", "lots")
	_, err = LoadConfig(path)
	assert.ErrorContains(t, err, "SEARCH_BURST")
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	t.Setenv("CACHE_TTL", "soon")
	_, err = LoadConfig("")
	assert.ErrorContains(t, err, "CACHE_TTL")
}

func TestEnvOr(t *testing.T) {
	t.Setenv("ENGINEPAGES_TEST_VAR", "set")
	assert.Equal(t, "set", EnvOr("ENGINEPAGES_TEST_VAR", "fallback"))
	assert.Equal(t, "fallback", EnvOr("ENGINEPAGES_TEST_UNSET", "fallback"))
}
