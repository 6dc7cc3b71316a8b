package redis

import (
	"context"
	"sync"

	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/pkg/log"
	pkgRedis "chat-notification-srv/pkg/redis"

	"github.com/redis/go-redis/v9"
)

// Subscriber consumes message-created events from Redis pub/sub.
type Subscriber interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// Config bounds how many events are processed at once.
type Config struct {
	MaxInFlight int
}

type subscriber struct {
	redis pkgRedis.IRedis
	uc    fanout.UseCase
	l     log.Logger

	// Lifecycle fields
	pubsub *redis.PubSub
	sem    chan struct{}
	wg     sync.WaitGroup
	quit   chan struct{}
	once   sync.Once
}

func New(l log.Logger, redis pkgRedis.IRedis, uc fanout.UseCase, cfg Config) Subscriber {
	if cfg.MaxInFlight <= 0 {
		cfg.MaxInFlight = DefaultMaxInFlight
	}
	return &subscriber{
		redis: redis,
		uc:    uc,
		l:     l,
		sem:   make(chan struct{}, cfg.MaxInFlight),
		quit:  make(chan struct{}),
	}
}
