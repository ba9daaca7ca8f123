package config

import (
	"encoding/json"
	"os"

	"filmoteka/internal/flagx"
)

// JsonConfig is the DTO for the optional JSON configuration file. After
// unmarshalling, its fields are copied into the runtime Config.
type JsonConfig struct {
	EndpointAddrGRPC string `json:"endpoint_addr_grpc"`
	DatabaseDSN      string `json:"database_dsn"`
	APIKey           string `json:"api_key"`
	PageSize         int    `json:"page_size"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path comes from the -c/-config command-line
// flags; when neither is set, no JSON file is loaded. A missing or invalid
// file panics: a config file that was asked for must load.
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

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.APIKey != "" {
		config.APIKey = c.APIKey
	}
	if c.PageSize > 0 {
		config.PageSize = c.PageSize
	}
}
