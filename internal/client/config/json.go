package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pulsedash/pulsedash/internal/flagx"
)

// JsonConfig is the DTO used only for reading JSON configuration files.
// The timeout is an integer number of seconds.
type JsonConfig struct {
	ServerAddr            string `json:"server_addr"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	StateDir              string `json:"state_dir"`
}

// parseJson loads configuration values from the JSON file named by the -c
// or -config flags, if any. A file that cannot be read or parsed panics;
// a missing flag means nothing is loaded.
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

	config.ServerAddr = c.ServerAddr
	config.RequestTimeout = time.Duration(c.RequestTimeoutSeconds) * time.Second
	config.StateDir = c.StateDir
}
