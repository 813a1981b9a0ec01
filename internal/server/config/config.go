// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the PulseDash server.
//
// Fields:
//   - ListenAddr: bind address for the HTTP endpoint.
//   - UsersFile: path of the flat-file credential store.
//   - DashboardFile: path of the static analytics payload.
type Config struct {
	ListenAddr    string
	UsersFile     string
	DashboardFile string
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ListenAddr = ":3000"
	c.UsersFile = "data/users.json"
	c.DashboardFile = "data/data.json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
