package firestore

import (
	"context"
	"strings"

	"chat-notification-srv/internal/directory/repository"
	"chat-notification-srv/internal/model"

	fs "cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func (r *implRepository) GetChannel(ctx context.Context, channelID string) (model.Channel, error) {
	snap, err := r.get(ctx, r.channels, channelID)
	if err != nil {
		if err != repository.ErrNotFound {
			r.l.Errorf(ctx, "internal.directory.repository.firestore.GetChannel.get: %v", err)
		}
		return model.Channel{}, err
	}

	var doc channelDoc
	if err := snap.DataTo(&doc); err != nil {
		r.l.Errorf(ctx, "internal.directory.repository.firestore.GetChannel.DataTo: %v", err)
		return model.Channel{}, err
	}

	return doc.toModel(snap.Ref.ID), nil
}

func (r *implRepository) GetUser(ctx context.Context, userID string) (model.UserProfile, error) {
	snap, err := r.get(ctx, r.users, userID)
	if err != nil {
		if err != repository.ErrNotFound {
			r.l.Errorf(ctx, "internal.directory.repository.firestore.GetUser.get: %v", err)
		}
		return model.UserProfile{}, err
	}

	var doc userDoc
	if err := snap.DataTo(&doc); err != nil {
		r.l.Errorf(ctx, "internal.directory.repository.firestore.GetUser.DataTo: %v", err)
		return model.UserProfile{}, err
	}

	return doc.toModel(snap.Ref.ID), nil
}

// Ping reads at most one channel document to prove the database is reachable.
func (r *implRepository) Ping(ctx context.Context) error {
	it := r.client.Collection(r.channels).Limit(1).Documents(ctx)
	defer it.Stop()

	if _, err := it.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}

func (r *implRepository) get(ctx context.Context, collection, id string) (*fs.DocumentSnapshot, error) {
	// Document ids cannot be empty or contain a path separator.
	if strings.TrimSpace(id) == "" || strings.Contains(id, "/") {
		return nil, repository.ErrNotFound
	}

	snap, err := r.client.Collection(collection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if !snap.Exists() {
		return nil, repository.ErrNotFound
	}

	return snap, nil
}
