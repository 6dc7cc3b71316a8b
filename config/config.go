package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	// DirectoryDriverFirestore reads channels and users from Cloud Firestore.
	DirectoryDriverFirestore = "firestore"
	// DirectoryDriverPostgres reads channels and users from PostgreSQL.
	DirectoryDriverPostgres = "postgres"
	// DirectoryDriverSQLite reads channels and users from a SQLite file.
	DirectoryDriverSQLite = "sqlite"
)

// Config holds all service configuration.
type Config struct {
	// Environment Configuration
	Environment EnvironmentConfig

	// Server Configuration
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Event Source Configuration
	Redis RedisConfig
	NATS  NATSConfig

	// Directory Store Configuration
	Directory DirectoryConfig
	Postgres  PostgresConfig
	SQLite    SQLiteConfig
	Firebase  FirebaseConfig

	// Push Gateway Configuration
	Push PushConfig

	// Fan-out Configuration
	Fanout FanoutConfig

	// Authentication & Security Configuration
	InternalAuth InternalAuthConfig

	// Monitoring & Notification Configuration
	Discord DiscordConfig
}

// EnvironmentConfig is the configuration for the deployment environment.
type EnvironmentConfig struct {
	Name string `env:"ENV" envDefault:"production"`
}

// HTTPServerConfig is the configuration for the HTTP trigger server
type HTTPServerConfig struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port int    `env:"HTTP_PORT" envDefault:"8080"`
	Mode string `env:"HTTP_MODE" envDefault:"release"`
}

// LoggerConfig is the configuration for the logger
type LoggerConfig struct {
	Level        string `env:"LOGGER_LEVEL" envDefault:"info"`
	Mode         string `env:"LOGGER_MODE" envDefault:"production"`
	Encoding     string `env:"LOGGER_ENCODING" envDefault:"json"`
	ColorEnabled bool   `env:"LOGGER_COLOR_ENABLED" envDefault:"false"`
}

// RedisConfig is the configuration for Redis
// Note: Only standalone mode is supported
type RedisConfig struct {
	Enabled  bool   `env:"REDIS_ENABLED" envDefault:"true"`
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     int    `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
	UseTLS   bool   `env:"REDIS_USE_TLS" envDefault:"false"`

	// Connection pool settings
	MaxRetries      int           `env:"REDIS_MAX_RETRIES" envDefault:"3"`
	MinIdleConns    int           `env:"REDIS_MIN_IDLE_CONNS" envDefault:"10"`
	PoolSize        int           `env:"REDIS_POOL_SIZE" envDefault:"100"`
	PoolTimeout     time.Duration `env:"REDIS_POOL_TIMEOUT" envDefault:"4s"`
	ConnMaxIdleTime time.Duration `env:"REDIS_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	ConnMaxLifetime time.Duration `env:"REDIS_CONN_MAX_LIFETIME" envDefault:"30m"`
}

// NATSConfig is the configuration for the optional NATS event source.
// The subscriber is started only when URL is set.
type NATSConfig struct {
	URL        string `env:"NATS_URL"`
	Subject    string `env:"NATS_SUBJECT" envDefault:"chat.message.created"`
	Queue      string `env:"NATS_QUEUE" envDefault:"chat-notification-srv"`
	ClientName string `env:"NATS_CLIENT_NAME" envDefault:"chat-notification-srv"`
}

// DirectoryConfig selects the directory store backend.
type DirectoryConfig struct {
	Driver string `env:"DIRECTORY_DRIVER" envDefault:"firestore"`
}

// PostgresConfig is the configuration for PostgreSQL
type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST" envDefault:"localhost"`
	Port     int    `env:"POSTGRES_PORT" envDefault:"5432"`
	User     string `env:"POSTGRES_USER" envDefault:"postgres"`
	Password string `env:"POSTGRES_PASSWORD"`
	DBName   string `env:"POSTGRES_DB" envDefault:"messaging"`
	SSLMode  string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

// SQLiteConfig is the configuration for the SQLite directory (local development).
type SQLiteConfig struct {
	Path         string `env:"SQLITE_PATH" envDefault:"directory.db"`
	EnsureSchema bool   `env:"SQLITE_ENSURE_SCHEMA" envDefault:"true"`
}

// FirebaseConfig is the configuration for the Firebase Admin SDK
type FirebaseConfig struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	CredentialsFile string `env:"FIREBASE_CREDENTIALS_FILE"`
	DatabaseID      string `env:"FIRESTORE_DATABASE_ID" envDefault:"messaging-app"`
}

// PushConfig is the configuration for the FCM push gateway
type PushConfig struct {
	Timeout    time.Duration `env:"PUSH_TIMEOUT" envDefault:"10s"`
	RatePerSec float64       `env:"PUSH_RATE_PER_SEC" envDefault:"100"`
	Burst      int           `env:"PUSH_BURST" envDefault:"100"`
	Sound      string        `env:"PUSH_SOUND" envDefault:"default"`
	DryRun     bool          `env:"PUSH_DRY_RUN" envDefault:"false"`
}

// FanoutConfig is the configuration for the notification fan-out dispatcher
type FanoutConfig struct {
	Workers            int    `env:"FANOUT_WORKERS" envDefault:"8"`
	FallbackSenderName string `env:"FANOUT_FALLBACK_SENDER_NAME" envDefault:"Someone"`
	AttachmentBody     string `env:"FANOUT_ATTACHMENT_BODY" envDefault:"Sent an attachment"`
	MaxInFlight        int    `env:"FANOUT_MAX_IN_FLIGHT" envDefault:"16"`
}

// InternalAuthConfig is the configuration for authenticating trigger callers
type InternalAuthConfig struct {
	SecretKey string `env:"INTERNAL_JWT_SECRET_KEY"`
}

// DiscordConfig is the configuration for Discord webhook notifications
type DiscordConfig struct {
	WebhookID    string `env:"DISCORD_WEBHOOK_ID"`
	WebhookToken string `env:"DISCORD_WEBHOOK_TOKEN"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error loading configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	// Validate internal auth
	if cfg.InternalAuth.SecretKey == "" {
		return fmt.Errorf("INTERNAL_JWT_SECRET_KEY is required")
	}
	if len(cfg.InternalAuth.SecretKey) < 32 {
		return fmt.Errorf("INTERNAL_JWT_SECRET_KEY must be at least 32 characters for security")
	}

	// Validate Firebase (push gateway, and the firestore directory)
	if cfg.Firebase.ProjectID == "" {
		return fmt.Errorf("FIREBASE_PROJECT_ID is required")
	}

	// Validate directory
	switch cfg.Directory.Driver {
	case DirectoryDriverFirestore:
		if cfg.Firebase.DatabaseID == "" {
			return fmt.Errorf("FIRESTORE_DATABASE_ID is required for the firestore directory")
		}
	case DirectoryDriverPostgres:
		if cfg.Postgres.Host == "" {
			return fmt.Errorf("POSTGRES_HOST is required")
		}
		if cfg.Postgres.DBName == "" {
			return fmt.Errorf("POSTGRES_DB is required")
		}
	case DirectoryDriverSQLite:
		if cfg.SQLite.Path == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("unsupported DIRECTORY_DRIVER %q", cfg.Directory.Driver)
	}

	// Validate Redis
	if cfg.Redis.Enabled {
		if cfg.Redis.Host == "" {
			return fmt.Errorf("REDIS_HOST is required")
		}
		if cfg.Redis.Port == 0 {
			return fmt.Errorf("REDIS_PORT is required")
		}
	}

	// Validate push
	if cfg.Push.RatePerSec <= 0 {
		return fmt.Errorf("PUSH_RATE_PER_SEC must be positive")
	}
	if cfg.Fanout.Workers < 1 {
		return fmt.Errorf("FANOUT_WORKERS must be at least 1")
	}
	if cfg.Fanout.MaxInFlight < 1 {
		return fmt.Errorf("FANOUT_MAX_IN_FLIGHT must be at least 1")
	}

	return nil
}
