package repository

import (
	"context"

	"chat-notification-srv/internal/model"
)

// Repository is the read-only directory of channels and users.
// Both lookups are point reads; ErrNotFound signals a missing document.
type Repository interface {
	GetChannel(ctx context.Context, channelID string) (model.Channel, error)
	GetUser(ctx context.Context, userID string) (model.UserProfile, error)
	Ping(ctx context.Context) error
}
