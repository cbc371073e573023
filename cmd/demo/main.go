package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/outputtracker/core/config"
	"github.com/dmitrymomot/outputtracker/core/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg Config
	config.MustLoad(&cfg)

	opts := []logger.Option{logger.WithDevelopment(cfg.AppName)}
	if cfg.JSONLogs {
		opts = []logger.Option{logger.WithProduction(cfg.AppName)}
	}
	log := logger.New(opts...)

	deps, cleanup, err := connect(ctx, cfg, log)
	if err != nil {
		log.Error("failed to set up adapters", logger.Error(err))
		os.Exit(1)
	}
	defer cleanup()

	report, err := run(ctx, cfg, deps)
	if err != nil {
		log.Error("demo scenario failed", logger.Error(err))
		os.Exit(1)
	}
	report.log(ctx, log)
	log.Info("demo finished", slog.Bool("nulled", cfg.Nulled))
}
