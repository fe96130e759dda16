package enginepages

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/eringen/enginepages/content"
)

// SiteConfig holds all configuration for the site. It is read from an
// optional YAML file and then overridden by environment variables.
type SiteConfig struct {
	Name        string `yaml:"name"`        // SITE_NAME (default "Engine Pages")
	URL         string `yaml:"url"`         // SITE_URL (default "http://localhost:3000")
	Description string `yaml:"description"` // Site description for RSS and meta tags

	Addr         string `yaml:"addr"`          // ADDR (default ":3000")
	DatabasePath string `yaml:"database_path"` // DATABASE_PATH (default "data/enginepages.db")
	StaticDir    string `yaml:"static_dir"`    // STATIC_DIR (default "public")

	AdminPassword string `yaml:"admin_password"` // ADMIN_PASSWORD, required
	SessionSecret string `yaml:"session_secret"` // SESSION_SECRET, required
	CookieSecure  bool   `yaml:"cookie_secure"`  // COOKIE_SECURE, set true behind HTTPS

	LogLevel string `yaml:"log_level"` // LOG_LEVEL: debug, info, warn, error, off (default "info")
	Tracing  bool   `yaml:"tracing"`   // TRACING: wrap requests in OpenTelemetry spans

	CacheTTL    time.Duration `yaml:"cache_ttl"`    // CACHE_TTL for rendered alternates (default 10m)
	SearchRate  float64       `yaml:"search_rate"`  // SEARCH_RATE, searches per second per IP (default 2)
	SearchBurst int           `yaml:"search_burst"` // SEARCH_BURST, burst allowance for SearchRate (default 5)
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = content.PublisherName
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Description == "" {
		c.Description = "Independent engine reviews: specifications, reliability issues and compatible models."
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/enginepages.db"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.CacheTTL == 0 {
		c.CacheTTL = 10 * time.Minute
	}
	if c.SearchRate == 0 {
		c.SearchRate = 2
	}
	if c.SearchBurst == 0 {
		c.SearchBurst = 5
	}
}

// LoadConfig reads path (when non-empty) as YAML and applies environment
// overrides on top. Defaults are filled in by New.
func LoadConfig(path string) (SiteConfig, error) {
	var cfg SiteConfig
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("enginepages: read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("enginepages: parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *SiteConfig) applyEnv() error {
	c.Name = EnvOr("SITE_NAME", c.Name)
	c.URL = EnvOr("SITE_URL", c.URL)
	c.Addr = EnvOr("ADDR", c.Addr)
	c.DatabasePath = EnvOr("DATABASE_PATH", c.DatabasePath)
	c.StaticDir = EnvOr("STATIC_DIR", c.StaticDir)
	c.AdminPassword = EnvOr("ADMIN_PASSWORD", c.AdminPassword)
	c.SessionSecret = EnvOr("SESSION_SECRET", c.SessionSecret)
	c.LogLevel = EnvOr("LOG_LEVEL", c.LogLevel)

	var err error
	if c.CookieSecure, err = envBool("COOKIE_SECURE", c.CookieSecure); err != nil {
		return err
	}
	if c.Tracing, err = envBool("TRACING", c.Tracing); err != nil {
		return err
	}
	if v := os.Getenv("CACHE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("enginepages: CACHE_TTL: %w", err)
		}
		c.CacheTTL = d
	}
	if v := os.Getenv("SEARCH_RATE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("enginepages: SEARCH_RATE: %w", err)
		}
		c.SearchRate = f
	}
	if v := os.Getenv("SEARCH_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("enginepages: SEARCH_BURST: %w", err)
		}
		c.SearchBurst = n
	}
	return nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback, fmt.Errorf("enginepages: %s: %w", key, err)
	}
	return b, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback runs after the built-in routes are registered.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithTable serves tbl instead of the built-in content table.
func WithTable(tbl content.Table) Option {
	return func(a *App) {
		a.Table = tbl
	}
}

// WithViews replaces the page components.
func WithViews(v ViewFuncs) Option {
	return func(a *App) {
		a.Views = v
	}
}
