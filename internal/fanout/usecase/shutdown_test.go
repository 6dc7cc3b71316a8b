package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"chat-notification-srv/internal/alert"
	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/internal/model"
)

// blockingAlert holds every dispatch until release is closed.
type blockingAlert struct {
	release chan struct{}
	mu      sync.Mutex
	aborted int
}

func (b *blockingAlert) DispatchEventAborted(ctx context.Context, input alert.EventAbortedInput) error {
	<-b.release
	b.mu.Lock()
	defer b.mu.Unlock()
	b.aborted++
	return nil
}

func (b *blockingAlert) DispatchDeliveryReport(ctx context.Context, input alert.DeliveryReportInput) error {
	<-b.release
	return nil
}

func TestShutdown_WaitsForAlerts(t *testing.T) {
	al := &blockingAlert{release: make(chan struct{})}
	uc := New(testLogger{}, baseDirectory(), &fakeGateway{}, al, Config{})

	_, err := uc.ProcessMessage(context.Background(), fanout.ProcessMessageInput{
		Event: model.MessageEvent{ChannelID: "nope", MessageID: "m1", SenderID: "u1"},
	})
	if !errors.Is(err, fanout.ErrChannelNotFound) {
		t.Fatalf("ProcessMessage() error = %v, want %v", err, fanout.ErrChannelNotFound)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	if err := uc.Shutdown(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("Shutdown() with pending alert error = %v, want %v", err, context.DeadlineExceeded)
	}

	close(al.release)
	if err := uc.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}

	al.mu.Lock()
	defer al.mu.Unlock()
	if al.aborted != 1 {
		t.Errorf("aborted alerts delivered = %d, want 1", al.aborted)
	}
}
