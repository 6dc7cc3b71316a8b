package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"chat-notification-srv/config"

	_ "github.com/lib/pq"   // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	// defaultConnectTimeout is the maximum time to wait for initial connection
	defaultConnectTimeout = 5 * time.Second
	// defaultMaxIdleConns is the maximum number of idle connections in the pool
	defaultMaxIdleConns = 25
	// defaultMaxOpenConns is the maximum number of open connections to the database
	defaultMaxOpenConns = 100
	// defaultConnMaxLifetime is the maximum amount of time a connection may be reused
	defaultConnMaxLifetime = 30 * time.Minute
	// defaultConnMaxIdleTime is the maximum amount of time a connection may be idle
	defaultConnMaxIdleTime = 5 * time.Minute
)

var (
	instance *sql.DB
	mu       sync.Mutex
)

// ConnectPostgres opens and pings a PostgreSQL pool.
// Returns the existing connection instance if already connected.
func ConnectPostgres(ctx context.Context, cfg config.PostgresConfig) (*sql.DB, error) {
	// Supported modes: disable, require, verify-ca, verify-full
	sslMode := cfg.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, sslMode)

	return connect(ctx, "postgres", dsn, defaultMaxOpenConns)
}

// ConnectSQLite opens and pings a SQLite database file.
// SQLite allows a single writer, so the pool is limited to one connection.
func ConnectSQLite(ctx context.Context, cfg config.SQLiteConfig) (*sql.DB, error) {
	return connect(ctx, "sqlite", cfg.Path, 1)
}

func connect(ctx context.Context, driver, dsn string, maxOpen int) (*sql.DB, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	connectCtx, cancel := context.WithTimeout(ctx, defaultConnectTimeout)
	defer cancel()

	// Open database connection (does not actually connect yet)
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s connection: %w", driver, err)
	}

	// Configure connection pool settings
	db.SetMaxIdleConns(min(defaultMaxIdleConns, maxOpen))
	db.SetMaxOpenConns(maxOpen)
	db.SetConnMaxLifetime(defaultConnMaxLifetime)
	db.SetConnMaxIdleTime(defaultConnMaxIdleTime)

	// Verify connection by pinging the database
	if err := db.PingContext(connectCtx); err != nil {
		// Close connection to prevent resource leak
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping %s: %w", driver, err)
	}

	instance = db
	return instance, nil
}

// Disconnect closes the connection and resets the singleton instance.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	if err := instance.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	instance = nil
	return nil
}
