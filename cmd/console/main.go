package main

import (
	"context"
	"log"
	"log/slog"

	"github.com/Fyandono/project-maintenance-system/internal/client/cli"
	"github.com/Fyandono/project-maintenance-system/internal/client/config"
	"github.com/Fyandono/project-maintenance-system/internal/logging"
)

func main() {
	cfg := config.LoadConfig()
	logger := logging.NewDefault(slog.LevelWarn)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(context.Background())
}
