package nats

import (
	"context"
	"sync"

	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/pkg/log"
	pkgNats "chat-notification-srv/pkg/nats"

	natspkg "github.com/nats-io/nats.go"
)

// Subscriber consumes message-created events from a NATS queue group.
type Subscriber interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type Config struct {
	Subject     string
	Queue       string
	MaxInFlight int
}

type subscriber struct {
	nats pkgNats.INats
	uc   fanout.UseCase
	l    log.Logger
	cfg  Config

	sub  *natspkg.Subscription
	sem  chan struct{}
	wg   sync.WaitGroup
	quit chan struct{}
	once sync.Once
}

func New(l log.Logger, nats pkgNats.INats, uc fanout.UseCase, cfg Config) Subscriber {
	if cfg.Subject == "" {
		cfg.Subject = DefaultSubject
	}
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = DefaultMaxInFlight
	}
	return &subscriber{
		nats: nats,
		uc:   uc,
		l:    l,
		cfg:  cfg,
		sem:  make(chan struct{}, cfg.MaxInFlight),
		quit: make(chan struct{}),
	}
}
