package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/amrkal/tennis-reservation/internal/api"
	"github.com/amrkal/tennis-reservation/internal/infrastructure/db/mongo"
	"github.com/amrkal/tennis-reservation/internal/infrastructure/db/redis"
	"github.com/amrkal/tennis-reservation/internal/infrastructure/queue"
	"github.com/amrkal/tennis-reservation/internal/infrastructure/sms"
	"github.com/amrkal/tennis-reservation/internal/pkg/config"
	"github.com/amrkal/tennis-reservation/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- MongoDB ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	// --- Redis (cooldown + readiness) ---
	rdb, err := redis.Connect(ctx, redis.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	// --- Reminder broker (asynq over the same Redis) ---
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	defer asynqClient.Close()

	loc, err := time.LoadLocation(cfg.Reminder.Timezone)
	if err != nil {
		log.Fatal().Err(err).Str("timezone", cfg.Reminder.Timezone).Msg("invalid reminder timezone")
	}
	scheduler := queue.NewReminderScheduler(asynqClient, loc, log)

	// --- Verification/SMS provider ---
	provider := sms.NewClient(sms.Config{
		AccountSID:      cfg.Twilio.AccountSID,
		AuthToken:       cfg.Twilio.AuthToken,
		VerifyServiceID: cfg.Twilio.VerifyServiceID,
		FromNumber:      cfg.Twilio.FromNumber,
		Timeout:         cfg.Twilio.Timeout,
	})

	e := api.NewRouter(api.Dependencies{
		Mongo:     db,
		Redis:     rdb,
		Provider:  provider,
		Scheduler: scheduler,
		JWTSecret: cfg.JWTSecret,
		Logger:    log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("api server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		os.Exit(1)
	}
}
