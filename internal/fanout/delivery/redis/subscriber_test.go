package redis

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
	err    error
}

func (f *fakeUseCase) ProcessMessage(ctx context.Context, input fanout.ProcessMessageInput) (fanout.ProcessMessageOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inputs = append(f.inputs, input)
	return fanout.ProcessMessageOutput{}, f.err
}

func (f *fakeUseCase) Shutdown(ctx context.Context) error { return nil }

func TestParseMessage(t *testing.T) {
	tests := []struct {
		name    string
		channel string
		payload string
		wantErr error
		want    fanout.ProcessMessageInput
	}{
		{
			name:    "valid",
			channel: "chat:c1:message:m1",
			payload: `{"sender_id":"u1","text":"hello"}`,
		},
		{
			name:    "attachment without text",
			channel: "chat:c1:message:m2",
			payload: `{"sender_id":"u1"}`,
		},
		{name: "wrong prefix", channel: "room:c1:message:m1", payload: `{}`, wantErr: errInvalidChannel},
		{name: "missing message id", channel: "chat:c1:message:", payload: `{}`, wantErr: errInvalidChannel},
		{name: "extra segment", channel: "chat:c1:message:m1:x", payload: `{}`, wantErr: errInvalidChannel},
		{name: "bad json", channel: "chat:c1:message:m1", payload: `{"sender_id":`, wantErr: errInvalidPayload},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMessage(tt.channel, tt.payload)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseMessage() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseMessage() error = %v", err)
			}
			if got.Event.ChannelID != "c1" || got.Event.SenderID != "u1" {
				t.Errorf("Event = %+v", got.Event)
			}
			if got.Source != fanout.SourceRedis {
				t.Errorf("Source = %q, want %q", got.Source, fanout.SourceRedis)
			}
		})
	}
}

func TestHandleMessage(t *testing.T) {
	uc := &fakeUseCase{err: fanout.ErrChannelNotFound}
	s := New(testLogger{}, nil, uc, Config{MaxInFlight: 2}).(*subscriber)

	ctx := context.Background()
	s.handleMessage(ctx, "chat:c1:message:m1", `{"sender_id":"u1","text":"a"}`)
	s.handleMessage(ctx, "chat:c1:message:m2", `{"sender_id":"u1","text":"b"}`)
	s.handleMessage(ctx, "garbage", `{}`)
	s.handleMessage(ctx, "chat:c2:message:m3", `{"sender_id":"u2"}`)
	s.wg.Wait()

	if len(uc.inputs) != 3 {
		t.Fatalf("ProcessMessage calls = %d, want 3", len(uc.inputs))
	}
	if len(s.sem) != 0 {
		t.Errorf("semaphore not released: %d slots held", len(s.sem))
	}
}

func TestHandleMessage_AfterQuit(t *testing.T) {
	uc := &fakeUseCase{}
	s := New(testLogger{}, nil, uc, Config{MaxInFlight: 1}).(*subscriber)
	s.sem <- struct{}{}
	close(s.quit)

	s.handleMessage(context.Background(), "chat:c1:message:m1", `{"sender_id":"u1"}`)
	s.wg.Wait()

	if len(uc.inputs) != 0 {
		t.Errorf("ProcessMessage calls = %d, want 0", len(uc.inputs))
	}
}

func TestShutdown_Twice(t *testing.T) {
	uc := &fakeUseCase{}
	s := New(testLogger{}, nil, uc, Config{})

	ctx := context.Background()
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("first Shutdown() error = %v", err)
	}
	if err := s.Shutdown(ctx); err != nil {
		t.Fatalf("second Shutdown() error = %v", err)
	}

	s.(*subscriber).handleMessage(ctx, "chat:c1:message:m1", `{"sender_id":"u1"}`)
	s.(*subscriber).wg.Wait()
	if len(uc.inputs) != 0 {
		t.Errorf("ProcessMessage calls after shutdown = %d, want 0", len(uc.inputs))
	}
}
