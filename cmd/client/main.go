package main

import (
	"context"
	"log"
	"os"

	"github.com/moonui/moonui/internal/buildinfo"
	"github.com/moonui/moonui/internal/client/cli"
	"github.com/moonui/moonui/internal/client/config"
	"github.com/moonui/moonui/internal/logging"
	"github.com/moonui/moonui/internal/observability"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewDefault()

	if err := observability.InitSentry(cfg.SentryDSN, cfg.Environment); err != nil {
		logger.Warn(ctx, "sentry init failed", "error", err)
	}
	defer observability.FlushSentry()

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
