package sqldb

import (
	"database/sql"
	"strings"

	"chat-notification-srv/internal/directory/repository"
	pkgLog "chat-notification-srv/pkg/log"
)

// Dialect selects the placeholder style of the underlying driver.
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite"
)

type implRepository struct {
	l       pkgLog.Logger
	db      *sql.DB
	dialect Dialect
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, db *sql.DB, dialect Dialect) repository.Repository {
	return &implRepository{
		l:       l,
		db:      db,
		dialect: dialect,
	}
}

// rebind turns $N placeholders into ?N for SQLite.
func (r *implRepository) rebind(query string) string {
	if r.dialect == DialectSQLite {
		return strings.ReplaceAll(query, "$", "?")
	}
	return query
}
