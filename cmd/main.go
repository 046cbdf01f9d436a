package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"blogd/config"
	"blogd/internal/app"
	"blogd/pkg/logger"
)

func main() {
	log := logger.New(os.Getenv("DEBUG") != "")
	ctx := logger.WithLogger(context.Background(), log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	a, err := app.NewApp(ctx, cfg)
	if err != nil {
		log.Error("app init failed", "error", err)
		os.Exit(1)
	}

	if err := a.Run(ctx); err != nil {
		log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
