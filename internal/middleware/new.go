package middleware

import (
	"chat-notification-srv/pkg/jwt"
	"chat-notification-srv/pkg/log"
)

type Middleware struct {
	l          log.Logger
	jwtManager jwt.IManager
}

func New(l log.Logger, jwtManager jwt.IManager) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
	}
}
