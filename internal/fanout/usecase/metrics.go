package usecase

import (
	"time"

	"chat-notification-srv/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultProcessed       = "processed"
	resultNoRecipients    = "no_recipients"
	resultInvalid         = "invalid"
	resultChannelNotFound = "channel_not_found"
	resultSenderNotFound  = "sender_not_found"
	resultError           = "error"
)

var (
	eventsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fanout_events_total",
		Help: "Message events handled, by result.",
	}, []string{"result"})

	outcomesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fanout_outcomes_total",
		Help: "Per-recipient dispatch outcomes, by status.",
	}, []string{"status"})

	eventDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fanout_event_duration_seconds",
		Help:    "Time to fan out one message event.",
		Buckets: prometheus.DefBuckets,
	})
)

func observeEvent(result string, elapsed time.Duration) {
	eventsTotal.WithLabelValues(result).Inc()
	eventDuration.Observe(elapsed.Seconds())
}

func observeOutcomes(counts map[model.OutcomeStatus]int) {
	for status, n := range counts {
		outcomesTotal.WithLabelValues(string(status)).Add(float64(n))
	}
}
