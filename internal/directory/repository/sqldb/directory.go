package sqldb

import (
	"context"

	"chat-notification-srv/internal/directory/repository"
	"chat-notification-srv/internal/model"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) GetChannel(ctx context.Context, channelID string) (model.Channel, error) {
	var rows []channelMemberRow
	if err := queries.Raw(r.rebind(channelMembersQuery), channelID).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.directory.repository.sqldb.GetChannel.Bind: %v", err)
		return model.Channel{}, errors.Wrap(err, "sqldb: get channel")
	}
	if len(rows) == 0 {
		return model.Channel{}, repository.ErrNotFound
	}

	return toChannel(rows), nil
}

func (r *implRepository) GetUser(ctx context.Context, userID string) (model.UserProfile, error) {
	var rows []userRow
	if err := queries.Raw(r.rebind(userQuery), userID).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.directory.repository.sqldb.GetUser.Bind: %v", err)
		return model.UserProfile{}, errors.Wrap(err, "sqldb: get user")
	}
	if len(rows) == 0 {
		return model.UserProfile{}, repository.ErrNotFound
	}

	return toUserProfile(rows[0]), nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func toChannel(rows []channelMemberRow) model.Channel {
	ch := model.Channel{ID: rows[0].ChannelID}
	for _, row := range rows {
		// A channel without members yields one row with a NULL user_id.
		if row.UserID.Valid {
			ch.MemberIDs = append(ch.MemberIDs, row.UserID.String)
		}
	}
	return ch
}

func toUserProfile(row userRow) model.UserProfile {
	return model.UserProfile{
		ID:          row.ID,
		DisplayName: row.DisplayName.String,
		UserName:    row.UserName.String,
		PushToken:   row.FCMToken.String,
	}
}
