package http

import (
	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/pkg/discord"
	"chat-notification-srv/pkg/log"
)

// Handler exposes the fan-out use case as an internal HTTP trigger.
type Handler struct {
	l       log.Logger
	uc      fanout.UseCase
	discord discord.IDiscord
}

func New(l log.Logger, uc fanout.UseCase, discord discord.IDiscord) Handler {
	return Handler{
		l:       l,
		uc:      uc,
		discord: discord,
	}
}
