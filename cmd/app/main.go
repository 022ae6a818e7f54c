package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vantagerp/lootcase-api/internal/catalog"
	"github.com/vantagerp/lootcase-api/internal/config"
	"github.com/vantagerp/lootcase-api/internal/database"
	"github.com/vantagerp/lootcase-api/internal/database/postgres"
	"github.com/vantagerp/lootcase-api/internal/event"
	"github.com/vantagerp/lootcase-api/internal/grant"
	"github.com/vantagerp/lootcase-api/internal/lootcase"
	"github.com/vantagerp/lootcase-api/internal/ratelimit"
	"github.com/vantagerp/lootcase-api/internal/server"
)

const (
	dbMaxConnections    = 10
	dbMaxConnIdleTime   = 5 * time.Minute
	dbMaxConnLifetime   = 30 * time.Minute
	shutdownGracePeriod = 15 * time.Second
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	pool, err := database.NewPool(context.Background(), cfg.GetDBConnString(), dbMaxConnections, dbMaxConnIdleTime, dbMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	registry, err := catalog.Load(cfg.CasesPath)
	if err != nil {
		slog.Error("Failed to load case catalog", "error", err, "path", cfg.CasesPath)
		os.Exit(1)
	}

	repo := postgres.NewLootcaseRepository(pool)
	grants := grant.NewRegistry()
	limiter := ratelimit.NewSlidingWindow(cfg.RateLimitWindow, cfg.RateLimitMaxOps)
	bus := event.NewMemoryBus()

	lootcaseService := lootcase.NewService(repo, registry, grants, limiter, bus)

	srv := server.NewServer(cfg.Port, cfg.APIKey, nil, pool, lootcaseService)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownGracePeriod)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	slog.Info("Server stopped")
}
