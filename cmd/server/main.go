package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"travel_console/internal/application"
	"travel_console/internal/config"
	"travel_console/pkg/contextx"
	"travel_console/pkg/logx"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config.Load", logx.Error(err))
		os.Exit(1) //nolint:gocritic // cancel is a no-op here
	}

	log := logx.NewConsoleLogger(os.Stdout, cfg.App.LogLevel).
		With(slog.String(logx.FieldAppVersion, cfg.App.Version))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err = application.Run(ctx, cfg); err != nil {
		log.Error("application.Run", logx.Error(err))
		os.Exit(1) //nolint:gocritic // cancel is a no-op here
	}

	log.Info("application stopped")
}
