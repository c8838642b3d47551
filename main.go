package main

import (
	"context"
	"log"

	"social-manager/internal/bootstrap"
	"social-manager/internal/config"
	"social-manager/internal/observability"
	"social-manager/internal/server"
)

func main() {
	ctx := context.Background()
	logger := observability.NewLogger()
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %s", err)
	}

	deps, err := bootstrap.Initialize(ctx, cfg, logger)
	if err != nil {
		logger.Fatal(ctx, "failed to initialize dependencies", err)
	}

	srv := server.New(cfg, deps, logger)
	srv.Setup()

	if err := srv.Start(ctx); err != nil {
		logger.Fatal(ctx, "failed to start server", err)
	}

	if err := srv.WaitForShutdown(ctx); err != nil {
		logger.Fatal(ctx, "failed to shut down cleanly", err)
	}
}
