package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a .env file
// first when one exists in the working directory.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("FILMOTEKA_SERVER_ADDR"); v != "" {
		cfg.EndpointAddrGRPC = v
	}
	if v := os.Getenv("FILMOTEKA_DATABASE_DSN"); v != "" {
		cfg.DatabaseDSN = v
	}
	if v := os.Getenv("FILMOTEKA_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("FILMOTEKA_PAGE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.PageSize = n
		}
	}
}
