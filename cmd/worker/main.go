// The worker process consumes scheduled reminder tasks and sends the SMS
// through the same Twilio account the API uses for verification.
package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

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

	sender := sms.NewClient(sms.Config{
		AccountSID:      cfg.Twilio.AccountSID,
		AuthToken:       cfg.Twilio.AuthToken,
		VerifyServiceID: cfg.Twilio.VerifyServiceID,
		FromNumber:      cfg.Twilio.FromNumber,
		Timeout:         cfg.Twilio.Timeout,
	})

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB},
		asynq.Config{
			Concurrency: cfg.Reminder.Concurrency,
			Queues:      map[string]int{queue.QueueReminders: 1},
		},
	)

	worker := queue.NewReminderWorker(sender, log)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down worker")
		srv.Shutdown()
	}()

	log.Info().Int("concurrency", cfg.Reminder.Concurrency).Msg("reminder worker started")
	if err := srv.Run(worker.Mux()); err != nil {
		log.Fatal().Err(err).Msg("worker stopped")
	}
}
