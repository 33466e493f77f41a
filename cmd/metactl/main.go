package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"

	"localmeta/internal/application"
	"localmeta/internal/config"
	"localmeta/internal/infrastructure/database"
	"localmeta/internal/infrastructure/i18n"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", slog.Any("error", err))
		return 1
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      cfg.LogLevel,
		TimeFormat: time.Kitchen,
	}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("run migrations", slog.Any("error", err))
		return 1
	}

	pool, err := database.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		logger.Error("connect database", slog.Any("error", err))
		return 1
	}
	defer pool.Close()

	repo := database.NewMetadataRepository(pool)
	service := application.NewMetadataService(repo, logger)
	translator := i18n.NewTranslator(cfg.DefaultLocale, logger)

	return newCLI(service, translator, os.Stdout, os.Stderr).run(ctx, os.Args[1:])
}
