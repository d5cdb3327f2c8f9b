package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/filekeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   TCP bind address (e.g., "127.0.0.1:1337")
//	-s string   store root directory
//	-d string   registry document path
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(config *Config) {
	// Filter args to include only the flags handled here.
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-s", "-d"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.BindAddr, "a", config.BindAddr, "address and port to run server")
	fs.StringVar(&config.StorePath, "s", config.StorePath, "store root directory")
	fs.StringVar(&config.RegistryPath, "d", config.RegistryPath, "registry document path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
