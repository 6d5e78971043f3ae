package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/sanmitsu/internal/buildinfo"
	"github.com/dmitrijs2005/sanmitsu/internal/logging"
	"github.com/dmitrijs2005/sanmitsu/internal/server"
	"github.com/dmitrijs2005/sanmitsu/internal/server/config"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		logging.NewJSONLogger(os.Stderr, "error").Error(ctx, "config error", "error", err)
		stop()
		os.Exit(1)
	}
	logger := logging.NewJSONLogger(os.Stdout, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup error", "error", err)
		stop()
		os.Exit(1)
	}

	err = app.Run(ctx)
	if cerr := app.Close(); cerr != nil {
		logger.Error(ctx, "close error", "error", cerr)
	}
	if err != nil {
		os.Exit(1)
	}
}
