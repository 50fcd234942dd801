package main

import (
	"context"

	"github.com/arfidakai/Rapihin.ai/internal/client/cli"
	"github.com/arfidakai/Rapihin.ai/internal/client/config"
	"github.com/arfidakai/Rapihin.ai/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	log := logging.NewDefault()

	app := cli.NewApp(cfg, log)
	app.Run(ctx)

}
