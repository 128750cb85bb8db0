package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"

	"github.com/amrkal/tennis-reservation/internal/api/metrics"
)

// ReminderScheduler enqueues reminder tasks for deferred execution. It
// implements ports.ReminderScheduler.
type ReminderScheduler struct {
	client *asynq.Client
	loc    *time.Location
	log    zerolog.Logger
}

// NewReminderScheduler wraps an asynq client. loc determines how the
// reservation's date and start time are interpreted; nil means local time.
func NewReminderScheduler(client *asynq.Client, loc *time.Location, log zerolog.Logger) *ReminderScheduler {
	if loc == nil {
		loc = time.Local
	}
	return &ReminderScheduler{client: client, loc: loc, log: log}
}

// Schedule submits a reminder task to the broker. The call returns as soon as
// the task is enqueued; execution happens in the worker process at the
// reservation's start time. Unparsable date/time falls back to immediate
// processing rather than losing the reminder.
func (s *ReminderScheduler) Schedule(ctx context.Context, phone, timeSlot, date string) error {
	payload := reminderPayload{Phone: phone, TimeSlot: timeSlot, Date: date}
	task := asynq.NewTask(TypeReservationReminder, marshalPayload(payload))

	opts := []asynq.Option{asynq.Queue(QueueReminders), asynq.MaxRetry(0)}
	if at, ok := executionTime(date, timeSlot, s.loc); ok {
		opts = append(opts, asynq.ProcessAt(at))
	} else {
		s.log.Warn().Str("date", date).Str("time_slot", timeSlot).Msg("unparsable slot, enqueueing reminder immediately")
	}

	info, err := s.client.EnqueueContext(ctx, task, opts...)
	if err != nil {
		metrics.RemindersScheduledTotal.WithLabelValues("error").Inc()
		return fmt.Errorf("enqueue reminder: %w", err)
	}

	metrics.RemindersScheduledTotal.WithLabelValues("ok").Inc()
	s.log.Info().
		Str("task_id", info.ID).
		Str("phone", phone).
		Time("process_at", info.NextProcessAt).
		Msg("reminder scheduled")
	return nil
}
