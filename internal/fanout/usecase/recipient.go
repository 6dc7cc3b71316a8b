package usecase

import (
	"strings"

	"chat-notification-srv/internal/model"
)

// resolveRecipients returns the channel members minus the sender, without
// duplicates or empty ids, in first-appearance order.
func resolveRecipients(channel model.Channel, senderID string) []string {
	seen := make(map[string]struct{}, len(channel.MemberIDs))
	recipients := make([]string, 0, len(channel.MemberIDs))

	for _, id := range channel.MemberIDs {
		if id == senderID || strings.TrimSpace(id) == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		recipients = append(recipients, id)
	}

	return recipients
}
