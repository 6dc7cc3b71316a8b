package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"chat-notification-srv/internal/alert"
	"chat-notification-srv/internal/directory/repository"
	"chat-notification-srv/internal/model"
	"chat-notification-srv/pkg/push"
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

// fakeDirectory serves channels and users from maps. userErrs forces a
// lookup error for specific user ids.
type fakeDirectory struct {
	channels   map[string]model.Channel
	users      map[string]model.UserProfile
	channelErr error
	userErrs   map[string]error
}

func (f *fakeDirectory) GetChannel(ctx context.Context, id string) (model.Channel, error) {
	if f.channelErr != nil {
		return model.Channel{}, f.channelErr
	}
	ch, ok := f.channels[id]
	if !ok {
		return model.Channel{}, repository.ErrNotFound
	}
	return ch, nil
}

func (f *fakeDirectory) GetUser(ctx context.Context, id string) (model.UserProfile, error) {
	if err, ok := f.userErrs[id]; ok {
		return model.UserProfile{}, err
	}
	u, ok := f.users[id]
	if !ok {
		return model.UserProfile{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeDirectory) Ping(ctx context.Context) error { return nil }

// fakeGateway records every message. Tokens in errs fail; tokens in panics panic.
type fakeGateway struct {
	mu     sync.Mutex
	sent   []push.Message
	errs   map[string]error
	panics map[string]bool
	delay  time.Duration

	inFlight    int
	maxInFlight int
}

func (f *fakeGateway) Send(ctx context.Context, msg push.Message) (string, error) {
	f.mu.Lock()
	f.sent = append(f.sent, msg)
	f.inFlight++
	if f.inFlight > f.maxInFlight {
		f.maxInFlight = f.inFlight
	}
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		f.inFlight--
		f.mu.Unlock()
	}()

	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.panics[msg.Token] {
		panic("gateway exploded")
	}
	if err, ok := f.errs[msg.Token]; ok {
		return "", err
	}
	return "msg-" + msg.Token, nil
}

func (f *fakeGateway) calls() []push.Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]push.Message(nil), f.sent...)
}

type fakeAlert struct {
	mu      sync.Mutex
	aborted []alert.EventAbortedInput
	reports []alert.DeliveryReportInput
}

func (f *fakeAlert) DispatchEventAborted(ctx context.Context, input alert.EventAbortedInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.aborted = append(f.aborted, input)
	return nil
}

func (f *fakeAlert) DispatchDeliveryReport(ctx context.Context, input alert.DeliveryReportInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, input)
	return errors.New("discord down")
}

func newTestUseCase(dir *fakeDirectory, gw *fakeGateway, al *fakeAlert, cfg Config) *implUseCase {
	uc := New(testLogger{}, dir, gw, al, cfg).(*implUseCase)
	uc.async = func(f func()) { f() }
	return uc
}

// baseDirectory is the u1/u2/u3 scenario: u2 has a token, u3 has none.
func baseDirectory() *fakeDirectory {
	return &fakeDirectory{
		channels: map[string]model.Channel{
			"c1": {ID: "c1", MemberIDs: []string{"u1", "u2", "u3"}},
		},
		users: map[string]model.UserProfile{
			"u1": {ID: "u1", DisplayName: "Alice", UserName: "alice"},
			"u2": {ID: "u2", PushToken: "t2"},
			"u3": {ID: "u3"},
		},
	}
}
