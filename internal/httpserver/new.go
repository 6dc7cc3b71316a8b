package httpserver

import (
	"context"
	"errors"

	"chat-notification-srv/internal/directory/repository"
	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/pkg/discord"
	"chat-notification-srv/pkg/jwt"
	"chat-notification-srv/pkg/log"
	pkgRedis "chat-notification-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// Subscriber is a background event source started with the server.
type Subscriber interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

// HTTPServer represents the HTTP server with all dependencies.
// New() only wires dependencies and validates them.
// Run() (in httpserver.go) is responsible for starting background services and HTTP serving.
type HTTPServer struct {
	// Server configuration
	gin         *gin.Engine
	logger      log.Logger
	host        string
	port        int
	environment string

	// Fan-out core
	fanoutUC    fanout.UseCase
	directory   repository.Repository
	subscribers []Subscriber

	// Auth & security
	jwtMgr jwt.IManager

	// External services
	redis   pkgRedis.IRedis
	discord discord.IDiscord
}

// Config is the constructor input for HTTPServer.
type Config struct {
	// Server configuration
	Host        string
	Port        int
	Mode        string
	Environment string

	// Fan-out core
	Fanout      fanout.UseCase
	Directory   repository.Repository
	Subscribers []Subscriber

	// Auth & security
	JWTManager jwt.IManager

	// External services. Redis is optional.
	Redis   pkgRedis.IRedis
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
// Note: This does NOT start any goroutines. Use (*HTTPServer).Run() to start the service.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		// Server configuration
		gin:         gin.New(),
		logger:      logger,
		host:        cfg.Host,
		port:        cfg.Port,
		environment: cfg.Environment,

		// Fan-out core
		fanoutUC:    cfg.Fanout,
		directory:   cfg.Directory,
		subscribers: cfg.Subscribers,

		// Auth & security
		jwtMgr: cfg.JWTManager,

		// External services
		redis:   cfg.Redis,
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate ensures all required dependencies are provided.
func (s *HTTPServer) validate() error {
	if s.logger == nil {
		return errors.New("logger is required")
	}
	if s.port == 0 {
		return errors.New("port is required")
	}
	if s.jwtMgr == nil {
		return errors.New("JWTManager is required")
	}
	if s.fanoutUC == nil {
		return errors.New("fan-out UseCase is required")
	}
	if s.directory == nil {
		return errors.New("directory repository is required")
	}

	return nil
}
