package nats

import (
	"context"
	"fmt"

	"chat-notification-srv/pkg/log"

	"github.com/google/uuid"
)

func (s *subscriber) Start(ctx context.Context) error {
	base := context.WithoutCancel(ctx)

	sub, err := s.nats.QueueSubscribe(s.cfg.Subject, s.cfg.Queue, func(data []byte) {
		s.handleMessage(base, data)
	})
	if err != nil {
		return fmt.Errorf("failed to subscribe: %w", err)
	}
	s.sub = sub

	s.l.Infof(ctx, "NATS subscriber started on subject: %s (queue %q)", s.cfg.Subject, s.cfg.Queue)
	return nil
}

func (s *subscriber) handleMessage(ctx context.Context, data []byte) {
	input, err := decodeMessage(data)
	if err != nil {
		s.l.Warnf(ctx, "internal.fanout.delivery.nats.handleMessage.decodeMessage: %v", err)
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
			s.l.Warnf(ctx, "internal.fanout.delivery.nats.handleMessage.ProcessMessage: %v", err)
		}
	}()
}

func (s *subscriber) Shutdown(ctx context.Context) error {
	s.once.Do(func() {
		close(s.quit)
		if s.sub != nil {
			if err := s.sub.Unsubscribe(); err != nil {
				s.l.Errorf(ctx, "failed to unsubscribe: %v", err)
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
		s.l.Infof(ctx, "NATS subscriber stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
