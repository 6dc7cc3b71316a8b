package httpserver

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/internal/model"
	"chat-notification-srv/pkg/jwt"

	"github.com/gin-gonic/gin"
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

type fakeDirectory struct {
	pingErr error
}

func (f fakeDirectory) GetChannel(ctx context.Context, id string) (model.Channel, error) {
	return model.Channel{}, nil
}

func (f fakeDirectory) GetUser(ctx context.Context, id string) (model.UserProfile, error) {
	return model.UserProfile{}, nil
}

func (f fakeDirectory) Ping(ctx context.Context) error { return f.pingErr }

type fakeUseCase struct{}

func (fakeUseCase) ProcessMessage(ctx context.Context, input fanout.ProcessMessageInput) (fanout.ProcessMessageOutput, error) {
	return fanout.ProcessMessageOutput{}, nil
}

func (fakeUseCase) Shutdown(ctx context.Context) error { return nil }

func newTestServer(t *testing.T, dir fakeDirectory) *HTTPServer {
	t.Helper()
	mgr, err := jwt.New(jwt.Config{SecretKey: "0123456789abcdef0123456789abcdef"})
	if err != nil {
		t.Fatalf("jwt.New() error = %v", err)
	}
	srv, err := New(testLogger{}, Config{
		Port:       8080,
		Mode:       gin.TestMode,
		Fanout:     fakeUseCase{},
		Directory:  dir,
		JWTManager: mgr,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if err := srv.mapHandlers(); err != nil {
		t.Fatalf("mapHandlers() error = %v", err)
	}
	return srv
}

func TestNew_Validate(t *testing.T) {
	if _, err := New(testLogger{}, Config{Mode: gin.TestMode}); err == nil {
		t.Error("New() with empty config: want error")
	}
}

func TestHealthEndpoints(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		pingErr    error
		wantStatus int
	}{
		{name: "live", path: "/live", wantStatus: http.StatusOK},
		{name: "health with failing directory", path: "/health", pingErr: errors.New("down"), wantStatus: http.StatusOK},
		{name: "ready", path: "/ready", wantStatus: http.StatusOK},
		{name: "not ready", path: "/ready", pingErr: errors.New("down"), wantStatus: http.StatusServiceUnavailable},
		{name: "metrics", path: "/metrics", wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, fakeDirectory{pingErr: tt.pingErr})
			w := httptest.NewRecorder()
			srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			if w.Code != tt.wantStatus {
				t.Errorf("GET %s status = %d, want %d", tt.path, w.Code, tt.wantStatus)
			}
		})
	}
}

func TestTriggerRouteRequiresAuth(t *testing.T) {
	srv := newTestServer(t, fakeDirectory{})
	w := httptest.NewRecorder()
	srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodPost, InternalApi+"/messages/created", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
