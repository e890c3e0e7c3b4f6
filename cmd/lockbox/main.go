package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/alexkarpovs/lockbox/internal/buildinfo"
	"github.com/alexkarpovs/lockbox/internal/cli"
	"github.com/alexkarpovs/lockbox/internal/config"
	"github.com/alexkarpovs/lockbox/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		os.Exit(1)
	}

}
