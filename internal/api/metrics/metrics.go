// Package metrics defines all custom Prometheus metrics for the tennis court
// reservation API. It is the single source of truth for metric names, labels,
// and help strings. Metrics register themselves with the default registry at
// init time via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "tennis"

// ReservationsCreatedTotal counts reservations admitted by the workflow.
var ReservationsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reservations_created_total",
		Help:      "Total number of reservations created.",
	},
)

// VerificationsStartedTotal counts verification codes requested from the
// provider.
// Label:
//   - result: "ok", "blocked" (provider refused or cooldown hit), or "error"
var VerificationsStartedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verifications_started_total",
		Help:      "Total number of verification sends, labelled by result.",
	},
	[]string{"result"},
)

// VerificationsCheckedTotal counts code checks against the provider.
// Label:
//   - result: "approved", "rejected", or "error"
var VerificationsCheckedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "verifications_checked_total",
		Help:      "Total number of verification checks, labelled by outcome.",
	},
	[]string{"result"},
)

// RemindersScheduledTotal counts reminder tasks handed to the broker.
// Label:
//   - result: "ok" or "error" (enqueue failure, reservation still succeeds)
var RemindersScheduledTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_scheduled_total",
		Help:      "Total number of reminder tasks enqueued, labelled by result.",
	},
	[]string{"result"},
)

// RemindersSentTotal counts reminder SMS deliveries attempted by the worker.
// Label:
//   - result: "ok" or "error" (send failure is logged and swallowed)
var RemindersSentTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "reminders_sent_total",
		Help:      "Total number of reminder messages sent by the worker, labelled by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "ok", "rejected" (bad credentials or unknown user), or "error"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
