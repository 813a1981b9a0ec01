// Package config handles configuration for the CLI client component,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the PulseDash CLI.
//
// Fields:
//   - ServerAddr: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout of the API client.
//   - StateDir: directory holding client-side state (the persisted session).
type Config struct {
	ServerAddr     string
	RequestTimeout time.Duration
	StateDir       string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerAddr = "http://localhost:3000"
	c.RequestTimeout = 5 * time.Second
	c.StateDir = ".pulsedash"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
