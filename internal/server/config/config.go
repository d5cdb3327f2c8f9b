// Package config handles configuration for the server component, including
// defaults, JSON overlay, and command-line flags.
package config

// Config holds runtime settings for the FileKeeper server.
//
// Fields:
//   - BindAddr: TCP bind address for the file-store endpoint.
//   - StorePath: root directory under which every user's home directory lives.
//   - RegistryPath: location of the flat-file user registry document.
type Config struct {
	BindAddr     string
	StorePath    string
	RegistryPath string
}

// LoadDefaults populates Config with development defaults: a loopback
// listener and a store next to the working directory.
func (c *Config) LoadDefaults() {
	c.BindAddr = "127.0.0.1:1337"
	c.StorePath = "store"
	c.RegistryPath = "database.json"
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
