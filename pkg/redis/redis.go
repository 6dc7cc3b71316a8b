package redis

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
)

// PSubscribe subscribes to the given channel patterns.
// The caller owns the returned PubSub and must close it.
func (r *redisImpl) PSubscribe(ctx context.Context, patterns ...string) *goredis.PubSub {
	return r.client.PSubscribe(ctx, patterns...)
}

// Close closes the Redis connection
func (r *redisImpl) Close() error {
	return r.client.Close()
}

// Ping checks if the connection is alive
func (r *redisImpl) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
