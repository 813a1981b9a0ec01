package config

import (
	"encoding/json"
	"os"

	"github.com/pulsedash/pulsedash/internal/flagx"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It is an intermediate DTO used only for reading JSON
// configuration files; after unmarshalling, its fields are copied into the
// runtime Config struct.
type JsonConfig struct {
	ListenAddr    string `json:"listen_addr"`
	UsersFile     string `json:"users_file"`
	DashboardFile string `json:"dashboard_file"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance.
//
// The JSON file path is taken from the -c or -config command-line flags.
// If neither is set, no JSON file is loaded. If the file cannot be read or
// contains invalid JSON, the function panics.
//
// The caller is expected to merge these values with defaults and
// command-line flags as part of the full configuration process.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	config.ListenAddr = c.ListenAddr
	config.UsersFile = c.UsersFile
	config.DashboardFile = c.DashboardFile
}
