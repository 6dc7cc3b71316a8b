package redis

import (
	"context"

	"chat-notification-srv/pkg/log"

	"github.com/google/uuid"
)

// handleMessage parses one pub/sub message and processes it in its own goroutine,
// waiting for a free slot when MaxInFlight events are already running.
func (s *subscriber) handleMessage(ctx context.Context, channel, payload string) {
	input, err := parseMessage(channel, payload)
	if err != nil {
		s.l.Warnf(ctx, "internal.fanout.delivery.redis.handleMessage.parseMessage: %v", err)
		return
	}

	select {
	case <-s.quit:
		return
	default:
	}

	select {
	case s.sem <- struct{}{}:
	case <-s.quit:
		return
	}

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		defer func() { <-s.sem }()

		ctx := log.WithFields(ctx, "source", input.Source, "trace_id", uuid.NewString())
		if _, err := s.uc.ProcessMessage(ctx, input); err != nil {
			s.l.Warnf(ctx, "internal.fanout.delivery.redis.handleMessage.ProcessMessage: channel=%s err=%v", channel, err)
		}
	}()
}
