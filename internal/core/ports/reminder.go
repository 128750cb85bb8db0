package ports

import "context"

// ReminderScheduler enqueues a deferred reminder tied to a reservation slot.
// The job is fire-and-forget: once enqueued, delivery failures are logged by
// the worker and never reported back.
type ReminderScheduler interface {
	Schedule(ctx context.Context, phone, timeSlot, date string) error
}

// MessageSender abstracts the outbound SMS transport used by the reminder
// worker (Twilio Messages in production).
type MessageSender interface {
	SendSMS(ctx context.Context, to, body string) error
}
