package push

import (
	"context"

	"chat-notification-srv/pkg/log"

	"firebase.google.com/go/v4/messaging"
	"golang.org/x/time/rate"
)

// IPush delivers a single push notification and returns the gateway message id.
type IPush interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// Sender is the subset of *messaging.Client used by the gateway.
type Sender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
	SendDryRun(ctx context.Context, message *messaging.Message) (string, error)
}

// New creates an FCM push gateway.
func New(l log.Logger, sender Sender, cfg Config) (IPush, error) {
	if sender == nil {
		return nil, ErrSenderRequired
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}

	limit := rate.Inf
	if cfg.RatePerSec > 0 {
		limit = rate.Limit(cfg.RatePerSec)
	}

	return &fcmImpl{
		l:       l,
		sender:  sender,
		cfg:     cfg,
		limiter: rate.NewLimiter(limit, cfg.Burst),
	}, nil
}
