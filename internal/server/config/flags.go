package config

import (
	"flag"
	"os"

	"github.com/pulsedash/pulsedash/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":3000")
//	-u string   path of the users store file
//	-d string   path of the dashboard payload file
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-u", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.ListenAddr, "a", config.ListenAddr, "address and port to run server")
	fs.StringVar(&config.UsersFile, "u", config.UsersFile, "users store file")
	fs.StringVar(&config.DashboardFile, "d", config.DashboardFile, "dashboard payload file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
