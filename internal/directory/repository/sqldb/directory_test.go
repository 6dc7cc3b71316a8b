package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"chat-notification-srv/internal/directory/repository"

	_ "modernc.org/sqlite"
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

func newTestRepository(t *testing.T) (repository.Repository, *sql.DB) {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("sql.Open() error = %v", err)
	}
	// Every pooled connection would get its own in-memory database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if err := EnsureSchema(ctx, db); err != nil {
		t.Fatalf("EnsureSchema() error = %v", err)
	}

	seed := []struct {
		query string
		args  []any
	}{
		{`INSERT INTO channels (id) VALUES (?)`, []any{"c1"}},
		{`INSERT INTO channels (id) VALUES (?)`, []any{"empty"}},
		{`INSERT INTO channel_members (channel_id, user_id, position) VALUES (?, ?, ?)`, []any{"c1", "u1", 0}},
		{`INSERT INTO channel_members (channel_id, user_id, position) VALUES (?, ?, ?)`, []any{"c1", "u3", 2}},
		{`INSERT INTO channel_members (channel_id, user_id, position) VALUES (?, ?, ?)`, []any{"c1", "u2", 1}},
		{`INSERT INTO users (id, display_name, user_name, fcm_token) VALUES (?, ?, ?, ?)`, []any{"u1", "Alice", "alice", nil}},
		{`INSERT INTO users (id, display_name, user_name, fcm_token) VALUES (?, ?, ?, ?)`, []any{"u2", nil, "bob", "t2"}},
	}
	for _, s := range seed {
		if _, err := db.ExecContext(ctx, s.query, s.args...); err != nil {
			t.Fatalf("seed %q: %v", s.query, err)
		}
	}

	return New(testLogger{}, db, DialectSQLite), db
}

func TestGetChannel(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	tests := []struct {
		name        string
		id          string
		wantMembers []string
		wantErr     error
	}{
		{name: "members in position order", id: "c1", wantMembers: []string{"u1", "u2", "u3"}},
		{name: "channel without members", id: "empty"},
		{name: "missing channel", id: "nope", wantErr: repository.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := repo.GetChannel(ctx, tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("GetChannel() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if ch.ID != tt.id {
				t.Errorf("ID = %q, want %q", ch.ID, tt.id)
			}
			if len(ch.MemberIDs) != len(tt.wantMembers) {
				t.Fatalf("MemberIDs = %v, want %v", ch.MemberIDs, tt.wantMembers)
			}
			for i := range tt.wantMembers {
				if ch.MemberIDs[i] != tt.wantMembers[i] {
					t.Errorf("MemberIDs[%d] = %q, want %q", i, ch.MemberIDs[i], tt.wantMembers[i])
				}
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	repo, _ := newTestRepository(t)
	ctx := context.Background()

	u1, err := repo.GetUser(ctx, "u1")
	if err != nil {
		t.Fatalf("GetUser(u1) error = %v", err)
	}
	if u1.DisplayName != "Alice" || u1.PushToken != "" {
		t.Errorf("u1 = %+v", u1)
	}

	u2, err := repo.GetUser(ctx, "u2")
	if err != nil {
		t.Fatalf("GetUser(u2) error = %v", err)
	}
	if u2.DisplayName != "" || u2.UserName != "bob" || u2.PushToken != "t2" {
		t.Errorf("u2 = %+v", u2)
	}

	if _, err := repo.GetUser(ctx, "ghost"); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("GetUser(ghost) error = %v, want ErrNotFound", err)
	}
}

func TestEnsureSchema_Idempotent(t *testing.T) {
	_, db := newTestRepository(t)
	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Errorf("second EnsureSchema() error = %v", err)
	}
}

func TestPing(t *testing.T) {
	repo, _ := newTestRepository(t)
	if err := repo.Ping(context.Background()); err != nil {
		t.Errorf("Ping() error = %v", err)
	}
}
