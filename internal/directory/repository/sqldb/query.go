package sqldb

import "github.com/aarondl/null/v8"

const (
	channelMembersQuery = `SELECT c.id AS channel_id, m.user_id AS user_id
FROM channels c
LEFT JOIN channel_members m ON m.channel_id = c.id
WHERE c.id = $1
ORDER BY m.position`

	userQuery = `SELECT id, display_name, user_name, fcm_token
FROM users
WHERE id = $1`
)

type channelMemberRow struct {
	ChannelID string      `boil:"channel_id"`
	UserID    null.String `boil:"user_id"`
}

type userRow struct {
	ID          string      `boil:"id"`
	DisplayName null.String `boil:"display_name"`
	UserName    null.String `boil:"user_name"`
	FCMToken    null.String `boil:"fcm_token"`
}
