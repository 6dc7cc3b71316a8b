package push

import (
	"time"

	"chat-notification-srv/pkg/log"

	"golang.org/x/time/rate"
)

// Message is a push addressed to one device token.
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
	// Sound is the APNs sound name; empty leaves it unset.
	Sound string
}

type Config struct {
	Timeout    time.Duration
	RatePerSec float64
	Burst      int
	DryRun     bool
}

type fcmImpl struct {
	l       log.Logger
	sender  Sender
	cfg     Config
	limiter *rate.Limiter
}
