package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/vadimbarashkov/shortener/internal/app"
	"github.com/vadimbarashkov/shortener/internal/config"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}

	if err := app.Run(ctx, cfg); err != nil {
		slog.Error("application stopped with error", "err", err)
		os.Exit(1)
	}
}
