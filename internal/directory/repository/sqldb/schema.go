package sqldb

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"
)

// schema is valid for both PostgreSQL and SQLite.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS channels (
	id TEXT PRIMARY KEY
)`,
	`CREATE TABLE IF NOT EXISTS users (
	id           TEXT PRIMARY KEY,
	display_name TEXT,
	user_name    TEXT,
	fcm_token    TEXT
)`,
	`CREATE TABLE IF NOT EXISTS channel_members (
	channel_id TEXT    NOT NULL REFERENCES channels(id) ON DELETE CASCADE,
	user_id    TEXT    NOT NULL,
	position   INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (channel_id, position)
)`,
}

// EnsureSchema creates the directory tables when they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return errors.Wrap(err, "sqldb: ensure schema")
		}
	}
	return nil
}
