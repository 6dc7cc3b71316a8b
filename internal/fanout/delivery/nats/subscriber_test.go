package nats

import (
	"context"
	"errors"
	"sync"
	"testing"

	"chat-notification-srv/internal/fanout"
)

type testLogger struct{}

func (testLogger) Debug(ctx context.Context, arg ...any)                    {}
func (testLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Info(ctx context.Context, arg ...any)                     {}
func (testLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Warn(ctx context.Context, arg ...any)                     {}
func (testLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (testLogger) Error(ctx context.Context, arg ...any)                    {}
func (testLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (testLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (testLogger) Panic(ctx context.Context, arg ...any)                    {}
func (testLogger) Panicf(ctx context.Context, template string, arg ...any)  {}
func (testLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (testLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type fakeUseCase struct {
	mu     sync.Mutex
	inputs []fanout.ProcessMessageInput
}

func (f *fakeUseCase) ProcessMessage(ctx context.Context, input fanout.ProcessMessageInput) (fanout.ProcessMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, input)
	return fanout.ProcessMessageOutput{}, nil
}

func (f *fakeUseCase) Shutdown(ctx context.Context) error { return nil }

func TestDecodeMessage(t *testing.T) {
	got, err := decodeMessage([]byte(`{"channel_id":"c1","message_id":"m1","sender_id":"u1","text":"hi"}`))
	if err != nil {
		t.Fatalf("decodeMessage() error = %v", err)
	}
	if got.Event.ChannelID != "c1" || got.Event.MessageID != "m1" || got.Event.SenderID != "u1" || got.Event.Text != "hi" {
		t.Errorf("Event = %+v", got.Event)
	}
	if got.Source != fanout.SourceNATS {
		t.Errorf("Source = %q, want %q", got.Source, fanout.SourceNATS)
	}

	if _, err := decodeMessage([]byte(`not json`)); !errors.Is(err, errInvalidPayload) {
		t.Errorf("decodeMessage() error = %v, want %v", err, errInvalidPayload)
	}
}

func TestHandleMessage(t *testing.T) {
	uc := &fakeUseCase{}
	s := New(testLogger{}, nil, uc, Config{}).(*subscriber)
	if s.cfg.Subject != DefaultSubject {
		t.Errorf("Subject = %q, want %q", s.cfg.Subject, DefaultSubject)
	}

	ctx := context.Background()
	s.handleMessage(ctx, []byte(`{"channel_id":"c1","sender_id":"u1"}`))
	s.handleMessage(ctx, []byte(`{`))
	s.wg.Wait()

	if len(uc.inputs) != 1 {
		t.Fatalf("ProcessMessage calls = %d, want 1", len(uc.inputs))
	}

	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	s.handleMessage(ctx, []byte(`{"channel_id":"c1","sender_id":"u1"}`))
	s.wg.Wait()
	if len(uc.inputs) != 1 {
		t.Errorf("ProcessMessage after shutdown: calls = %d, want 1", len(uc.inputs))
	}
}
