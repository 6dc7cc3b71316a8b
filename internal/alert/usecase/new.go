package usecase

import (
	"chat-notification-srv/internal/alert"
	"chat-notification-srv/pkg/discord"
	"chat-notification-srv/pkg/log"
)

type implUseCase struct {
	logger  log.Logger
	discord discord.IDiscord
}

// New creates the alert use case. A nil discord client disables alerting.
func New(logger log.Logger, discord discord.IDiscord) alert.UseCase {
	return &implUseCase{
		logger:  logger,
		discord: discord,
	}
}
