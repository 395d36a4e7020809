package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrocampo/farm-system/internal/api"
	"github.com/agrocampo/farm-system/internal/core/service"
	"github.com/agrocampo/farm-system/internal/infrastructure/config"
	mongodb "github.com/agrocampo/farm-system/internal/infrastructure/db/mongo"
	redisdb "github.com/agrocampo/farm-system/internal/infrastructure/db/redis"
	"github.com/agrocampo/farm-system/internal/infrastructure/queue"
	"github.com/agrocampo/farm-system/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Farm System API
// @version      1.0
// @description  Session-based authentication and record management for farm operations.
// @BasePath     /
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting farm-system")

	// --- MongoDB ---
	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		return fmt.Errorf("connecting to mongo: %w", err)
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("ensuring indexes: %w", err)
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	// --- Redis ---
	redisClient, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		return fmt.Errorf("connecting to redis: %w", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}()
	log.Info().Str("addr", cfg.Redis.Addr).Msg("redis connected")

	// --- Background last-login workers ---
	recorder := service.NewTouchService(mongodb.NewUserRepository(db), log)
	dispatcher := queue.NewDispatcher(0, recorder, log)
	dispatcher.Start(ctx)

	// --- HTTP server ---
	e := api.NewRouter(cfg, api.RouterDeps{
		Mongo:      mongoClient,
		DB:         db,
		Redis:      redisClient,
		TouchQueue: dispatcher,
		Log:        log,
	})

	errCh := make(chan error, 1)
	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("stopped cleanly")
	return nil
}
