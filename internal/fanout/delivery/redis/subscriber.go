package redis

import (
	"context"
	"fmt"
)

func (s *subscriber) Start(ctx context.Context) error {
	s.pubsub = s.redis.PSubscribe(ctx, ChannelPattern)

	// Wait for confirmation that subscription is created
	if _, err := s.pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}

	s.wg.Add(1)
	go s.listen(context.WithoutCancel(ctx))

	s.l.Infof(ctx, "Redis subscriber started on pattern: %s", ChannelPattern)
	return nil
}

func (s *subscriber) listen(ctx context.Context) {
	defer s.wg.Done()

	ch := s.pubsub.Channel()

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				s.l.Warnf(ctx, "redis pubsub channel closed")
				return
			}
			s.handleMessage(ctx, msg.Channel, msg.Payload)
		case <-s.quit:
			return
		}
	}
}

func (s *subscriber) Shutdown(ctx context.Context) error {
	s.once.Do(func() {
		close(s.quit)
		if s.pubsub != nil {
			if err := s.pubsub.Close(); err != nil {
				s.l.Errorf(ctx, "failed to close pubsub: %v", err)
			}
		}
	})

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		s.l.Infof(ctx, "Redis subscriber stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
