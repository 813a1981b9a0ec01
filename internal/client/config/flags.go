package config

import (
	"flag"
	"os"
	"time"

	"github.com/pulsedash/pulsedash/internal/flagx"
)

// parseFlags populates selected client Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-s string   base URL of the API server (e.g., "http://localhost:3000")
//	-t int      request timeout, seconds
//	-d string   client state directory
//
// The args are filtered with flagx.FilterArgs first so the client can share
// a process with components defining other flags.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-s", "-t", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ServerAddr, "s", config.ServerAddr, "API server base URL")
	requestTimeout := fs.Int("t", int(config.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&config.StateDir, "d", config.StateDir, "client state directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.RequestTimeout = time.Duration(*requestTimeout) * time.Second
}
