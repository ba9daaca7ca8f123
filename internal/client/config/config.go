// Package config handles configuration for the client binary: defaults,
// optional .env/environment overlay, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the filmoteka CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the catalog gRPC endpoint.
//   - APIKey: static API key attached to every outbound request.
//   - CredentialsDSN: path of the SQLite database persisting the identity
//     credential across runs.
//   - RequestTimeout: per-command deadline applied by the CLI. The
//     transport itself enforces none.
type Config struct {
	ServerEndpointAddr string
	APIKey             string
	CredentialsDSN     string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.APIKey = "dev-key"
	c.CredentialsDSN = "filmoteka.db"
	c.RequestTimeout = 15 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if a config file is given), the environment, and command-line
// flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJSON(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
