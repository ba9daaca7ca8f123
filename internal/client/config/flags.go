package config

import (
	"flag"
	"os"
	"time"

	"filmoteka/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags:
//
//	-a string   address and port of the catalog server
//	-k string   API key
//	-d string   path to the credentials database
//	-t int      request timeout in seconds
//
// os.Args is filtered to just these flags so other packages can parse
// their own.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-k", "-d", "-t"})

	fs := flag.NewFlagSet("client", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port of the catalog server")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "API key")
	fs.StringVar(&cfg.CredentialsDSN, "d", cfg.CredentialsDSN, "path to the credentials database")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
