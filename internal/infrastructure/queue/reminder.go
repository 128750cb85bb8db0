// Package queue implements the deferred reminder pipeline on top of asynq,
// a Redis-backed task queue. The API process enqueues reminder tasks
// scheduled at the reservation's start time; a separate worker process picks
// them up and sends the SMS.
package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

// TypeReservationReminder is the asynq task type for reservation reminders.
const TypeReservationReminder = "reminder:send"

// QueueReminders is the asynq queue reminders are routed to.
const QueueReminders = "reminders"

// reminderPayload is the wire format of a reminder task.
type reminderPayload struct {
	Phone    string `json:"phone"`
	TimeSlot string `json:"timeSlot"`
	Date     string `json:"date"`
}

func (p reminderPayload) message() string {
	return fmt.Sprintf("Reminder: Your tennis court reservation is at %s on %s.", p.TimeSlot, p.Date)
}

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// executionTime derives the task's scheduled execution time from the
// reservation's date and start time, interpreted in loc. The second return
// value is false when the fields do not parse, in which case the caller
// enqueues the task for immediate processing instead of dropping it.
func executionTime(date, timeSlot string, loc *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+timeSlot, loc)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func marshalPayload(p reminderPayload) []byte {
	b, _ := json.Marshal(p)
	return b
}
