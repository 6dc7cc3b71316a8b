package main

import (
	"context"
	"fmt"

	"chat-notification-srv/config"
	configFirebase "chat-notification-srv/config/firebase"
	configNats "chat-notification-srv/config/nats"
	configRedis "chat-notification-srv/config/redis"
	configSQL "chat-notification-srv/config/sqldb"
	alertUsecase "chat-notification-srv/internal/alert/usecase"
	"chat-notification-srv/internal/directory/repository"
	firestoreRepo "chat-notification-srv/internal/directory/repository/firestore"
	"chat-notification-srv/internal/directory/repository/sqldb"
	natsDelivery "chat-notification-srv/internal/fanout/delivery/nats"
	redisDelivery "chat-notification-srv/internal/fanout/delivery/redis"
	fanoutUsecase "chat-notification-srv/internal/fanout/usecase"
	"chat-notification-srv/internal/httpserver"
	"chat-notification-srv/pkg/discord"
	"chat-notification-srv/pkg/jwt"
	"chat-notification-srv/pkg/log"
	"chat-notification-srv/pkg/push"
	pkgRedis "chat-notification-srv/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})
	ctx := context.Background()

	// Initialize Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" && cfg.Discord.WebhookToken != "" {
		discordClient, err = discord.New(logger, cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err != nil {
			logger.Error(ctx, "Failed to initialize Discord: ", err)
			return
		}
		defer discordClient.Close()
	} else {
		logger.Warn(ctx, "Discord webhook not configured, ops alerts disabled")
	}

	// Initialize JWT manager for internal callers
	jwtManager, err := jwt.New(jwt.Config{SecretKey: cfg.InternalAuth.SecretKey})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}

	// Initialize Firebase (FCM, and Firestore when selected)
	firebaseApp, err := configFirebase.Connect(ctx, cfg.Firebase)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Firebase: ", err)
		return
	}
	fcmClient, err := configFirebase.Messaging(ctx, firebaseApp)
	if err != nil {
		logger.Error(ctx, "Failed to initialize FCM: ", err)
		return
	}
	gateway, err := push.New(logger, fcmClient, push.Config{
		Timeout:    cfg.Push.Timeout,
		RatePerSec: cfg.Push.RatePerSec,
		Burst:      cfg.Push.Burst,
		DryRun:     cfg.Push.DryRun,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize push gateway: ", err)
		return
	}

	// Initialize directory store
	directory, closeDirectory, err := connectDirectory(ctx, logger, cfg)
	if err != nil {
		logger.Error(ctx, "Failed to connect to directory store: ", err)
		return
	}
	defer closeDirectory()
	logger.Infof(ctx, "Directory store connected (driver: %s)", cfg.Directory.Driver)

	// Initialize fan-out core
	alertUC := alertUsecase.New(logger, discordClient)
	fanoutUC := fanoutUsecase.New(logger, directory, gateway, alertUC, fanoutUsecase.Config{
		Workers:            cfg.Fanout.Workers,
		FallbackSenderName: cfg.Fanout.FallbackSenderName,
		AttachmentBody:     cfg.Fanout.AttachmentBody,
		Sound:              cfg.Push.Sound,
	})

	// Initialize event sources
	var subscribers []httpserver.Subscriber

	var redisClient pkgRedis.IRedis
	if cfg.Redis.Enabled {
		redisClient, err = configRedis.Connect(ctx, cfg.Redis)
		if err != nil {
			logger.Error(ctx, "Failed to connect to Redis: ", err)
			return
		}
		defer configRedis.Disconnect()
		logger.Infof(ctx, "Redis connected successfully to %s:%d", cfg.Redis.Host, cfg.Redis.Port)

		subscribers = append(subscribers, redisDelivery.New(logger, redisClient, fanoutUC, redisDelivery.Config{
			MaxInFlight: cfg.Fanout.MaxInFlight,
		}))
	}

	if cfg.NATS.URL != "" {
		natsClient, err := configNats.Connect(cfg.NATS)
		if err != nil {
			logger.Error(ctx, "Failed to connect to NATS: ", err)
			return
		}
		defer configNats.Disconnect()
		logger.Infof(ctx, "NATS connected successfully to %s", cfg.NATS.URL)

		subscribers = append(subscribers, natsDelivery.New(logger, natsClient, fanoutUC, natsDelivery.Config{
			Subject:     cfg.NATS.Subject,
			Queue:       cfg.NATS.Queue,
			MaxInFlight: cfg.Fanout.MaxInFlight,
		}))
	}

	// Initialize HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Fanout:      fanoutUC,
		Directory:   directory,
		Subscribers: subscribers,
		JWTManager:  jwtManager,
		Redis:       redisClient,
		Discord:     discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// connectDirectory opens the directory backend selected by DIRECTORY_DRIVER.
func connectDirectory(ctx context.Context, logger log.Logger, cfg *config.Config) (repository.Repository, func(), error) {
	switch cfg.Directory.Driver {
	case config.DirectoryDriverFirestore:
		client, err := configFirebase.Firestore(ctx, cfg.Firebase)
		if err != nil {
			return nil, nil, err
		}
		return firestoreRepo.New(logger, client), func() { _ = client.Close() }, nil

	case config.DirectoryDriverPostgres:
		db, err := configSQL.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, err
		}
		return sqldb.New(logger, db, sqldb.DialectPostgres), closeSQL, nil

	case config.DirectoryDriverSQLite:
		db, err := configSQL.ConnectSQLite(ctx, cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		if cfg.SQLite.EnsureSchema {
			if err := sqldb.EnsureSchema(ctx, db); err != nil {
				closeSQL()
				return nil, nil, err
			}
		}
		return sqldb.New(logger, db, sqldb.DialectSQLite), closeSQL, nil

	default:
		return nil, nil, fmt.Errorf("unsupported directory driver %q", cfg.Directory.Driver)
	}
}

func closeSQL() {
	_ = configSQL.Disconnect()
}
