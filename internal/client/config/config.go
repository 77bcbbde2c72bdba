// Package config holds runtime settings for the maintenance console.
// Sources are layered: defaults, then a .env file, then a JSON config file,
// then command-line flags. Later sources take precedence.
package config

import "time"

// Config holds runtime settings for the console.
//
// Fields:
//   - BaseURL: backend REST endpoint, the only externally required setting.
//   - RequestTimeout: per-request HTTP timeout.
//   - DebounceWindow: quiescence window before free-text filters commit.
//   - DefaultPageSize: initial page size of every list view.
//   - SessionDBPath: sqlite file persisting the credential token.
type Config struct {
	BaseURL         string
	RequestTimeout  time.Duration
	DebounceWindow  time.Duration
	DefaultPageSize int
	SessionDBPath   string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.BaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 15 * time.Second
	c.DebounceWindow = 300 * time.Millisecond
	c.DefaultPageSize = 10
	c.SessionDBPath = "console.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment (including a .env file, if present), a JSON file
// (if given), and command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
