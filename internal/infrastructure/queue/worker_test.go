package queue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

type stubSender struct {
	sent []sentMessage
	err  error
}

type sentMessage struct {
	to, body string
}

func (s *stubSender) SendSMS(_ context.Context, to, body string) error {
	if s.err != nil {
		return s.err
	}
	s.sent = append(s.sent, sentMessage{to, body})
	return nil
}

func TestHandleReminder_SendsFormattedMessage(t *testing.T) {
	sender := &stubSender{}
	worker := NewReminderWorker(sender, zerolog.Nop())

	payload := marshalPayload(reminderPayload{
		Phone:    "+972501234567",
		TimeSlot: "10:00",
		Date:     "2026-09-15",
	})
	task := asynq.NewTask(TypeReservationReminder, payload)

	if err := worker.HandleReminder(context.Background(), task); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if len(sender.sent) != 1 {
		t.Fatalf("expected 1 message, got %d", len(sender.sent))
	}
	got := sender.sent[0]
	if got.to != "+972501234567" {
		t.Fatalf("sent to %q", got.to)
	}
	want := "Reminder: Your tennis court reservation is at 10:00 on 2026-09-15."
	if got.body != want {
		t.Fatalf("body %q, want %q", got.body, want)
	}
}

func TestHandleReminder_SendFailureIsSwallowed(t *testing.T) {
	sender := &stubSender{err: errors.New("twilio down")}
	worker := NewReminderWorker(sender, zerolog.Nop())

	task := asynq.NewTask(TypeReservationReminder, marshalPayload(reminderPayload{
		Phone: "+972501234567", TimeSlot: "10:00", Date: "2026-09-15",
	}))

	if err := worker.HandleReminder(context.Background(), task); err != nil {
		t.Fatalf("send failure must not surface from the handler, got %v", err)
	}
}

func TestHandleReminder_CorruptPayloadSkipsRetry(t *testing.T) {
	worker := NewReminderWorker(&stubSender{}, zerolog.Nop())
	task := asynq.NewTask(TypeReservationReminder, []byte("not-json"))

	err := worker.HandleReminder(context.Background(), task)
	if err == nil {
		t.Fatalf("expected error for corrupt payload")
	}
	if !errors.Is(err, asynq.SkipRetry) {
		t.Fatalf("corrupt payload should skip retry, got %v", err)
	}
}

func TestExecutionTime(t *testing.T) {
	loc := time.UTC

	at, ok := executionTime("2026-09-15", "10:00", loc)
	if !ok {
		t.Fatalf("expected valid parse")
	}
	want := time.Date(2026, 9, 15, 10, 0, 0, 0, loc)
	if !at.Equal(want) {
		t.Fatalf("got %v, want %v", at, want)
	}

	if _, ok := executionTime("15/09/2026", "10:00", loc); ok {
		t.Fatalf("expected parse failure for wrong date layout")
	}
	if _, ok := executionTime("2026-09-15", "ten", loc); ok {
		t.Fatalf("expected parse failure for wrong time layout")
	}
}
