package config

import (
	"encoding/json"
	"os"
	"time"

	"filmoteka/internal/flagx"
	"filmoteka/internal/timex"
)

// jsonConfig is the DTO for JSON unmarshalling; timex.Duration lets the
// file state the timeout as "15s" or integer nanoseconds.
type jsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	APIKey             string         `json:"api_key"`
	CredentialsDSN     string         `json:"credentials_dsn"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJSON overlays cfg with values from the file named by -c/-config.
// Absent file path means no overlay. Read or unmarshal errors panic, as a
// misnamed config file should not be silently ignored.
func parseJSON(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerEndpointAddr != "" {
		cfg.ServerEndpointAddr = jc.ServerEndpointAddr
	}
	if jc.APIKey != "" {
		cfg.APIKey = jc.APIKey
	}
	if jc.CredentialsDSN != "" {
		cfg.CredentialsDSN = jc.CredentialsDSN
	}
	if jc.RequestTimeout.Duration != 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeout.Duration)
	}
}
