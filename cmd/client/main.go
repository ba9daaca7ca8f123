package main

import (
	"context"
	"log"
	"os"

	"filmoteka/internal/client/cli"
	"filmoteka/internal/client/config"
	"filmoteka/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewJSON(os.Stderr)

	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
