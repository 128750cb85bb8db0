package queue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/amrkal/tennis-reservation/internal/api/metrics"
	"github.com/amrkal/tennis-reservation/internal/core/ports"
)

// ReminderWorker consumes reminder tasks and sends the SMS.
type ReminderWorker struct {
	sender ports.MessageSender
	log    zerolog.Logger
}

func NewReminderWorker(sender ports.MessageSender, log zerolog.Logger) *ReminderWorker {
	return &ReminderWorker{sender: sender, log: log}
}

// Mux returns an asynq ServeMux with the reminder handler registered.
func (w *ReminderWorker) Mux() *asynq.ServeMux {
	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReservationReminder, w.HandleReminder)
	return mux
}

// HandleReminder sends the reminder message. Send failures are logged and
// swallowed: the reminder is fire-and-forget, so the task never retries and
// delivery failure is never surfaced. Only a corrupt payload is returned as
// an error (skipped, not retried).
func (w *ReminderWorker) HandleReminder(ctx context.Context, t *asynq.Task) error {
	var payload reminderPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("decode reminder payload: %w: %w", asynq.SkipRetry, err)
	}

	if err := w.sender.SendSMS(ctx, payload.Phone, payload.message()); err != nil {
		metrics.RemindersSentTotal.WithLabelValues("error").Inc()
		w.log.Error().Err(err).
			Str("phone", payload.Phone).
			Str("date", payload.Date).
			Msg("failed to send reminder")
		return nil
	}

	metrics.RemindersSentTotal.WithLabelValues("ok").Inc()
	w.log.Info().
		Str("phone", payload.Phone).
		Str("date", payload.Date).
		Str("time_slot", payload.TimeSlot).
		Msg("reminder sent")
	return nil
}
