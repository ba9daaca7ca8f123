package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a .env file
// first when one exists in the working directory.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FILMOTEKA_ADDR"); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv("FILMOTEKA_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("FILMOTEKA_CREDENTIALS_DSN"); v != "" {
		cfg.CredentialsDSN = v
	}
	if v := os.Getenv("FILMOTEKA_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
}
