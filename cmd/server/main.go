package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/agrilink/farm-market/internal/api"
	"github.com/agrilink/farm-market/internal/core/service"
	"github.com/agrilink/farm-market/internal/infrastructure/config"
	mongodb "github.com/agrilink/farm-market/internal/infrastructure/db/mongo"
	redisdb "github.com/agrilink/farm-market/internal/infrastructure/db/redis"
	"github.com/agrilink/farm-market/internal/infrastructure/queue"
	"github.com/agrilink/farm-market/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	// Booking events flow through a sharded worker pool into the audit
	// trail, deduplicated via Redis.
	eventRepo := mongodb.NewBookingEventRepository(db)
	eventService := service.NewBookingEventService(eventRepo, redisdb.NewDedupChecker(rdb), log)
	dispatcher := queue.NewDispatcher(cfg.EventWorkers, eventService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, dispatcher, eventService, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
