package nats

import (
	"fmt"

	natspkg "github.com/nats-io/nats.go"
)

// INats is the subset of a NATS connection the service uses.
type INats interface {
	QueueSubscribe(subject, queue string, handler func(data []byte)) (*natspkg.Subscription, error)
	IsConnected() bool
	Drain() error
	Close()
}

// New connects to the NATS server at cfg.URL.
func New(cfg Config) (INats, error) {
	if cfg.URL == "" {
		return nil, ErrURLRequired
	}
	if cfg.Name == "" {
		cfg.Name = DefaultClientName
	}

	nc, err := natspkg.Connect(cfg.URL,
		natspkg.Name(cfg.Name),
		natspkg.Timeout(DefaultConnectTimeout),
		natspkg.MaxReconnects(-1),
		natspkg.ReconnectWait(DefaultReconnectWait),
	)
	if err != nil {
		return nil, fmt.Errorf("nats: connect: %w", err)
	}
	return &natsImpl{nc: nc}, nil
}
