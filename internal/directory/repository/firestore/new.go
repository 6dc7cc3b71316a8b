package firestore

import (
	"chat-notification-srv/internal/directory/repository"
	pkgLog "chat-notification-srv/pkg/log"

	fs "cloud.google.com/go/firestore"
)

const (
	ChannelsCollection = "channels"
	UsersCollection    = "users"
)

type implRepository struct {
	l        pkgLog.Logger
	client   *fs.Client
	channels string
	users    string
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, client *fs.Client) repository.Repository {
	return &implRepository{
		l:        l,
		client:   client,
		channels: ChannelsCollection,
		users:    UsersCollection,
	}
}
