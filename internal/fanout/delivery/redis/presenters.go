package redis

import (
	"encoding/json"
	"fmt"
	"strings"

	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/internal/model"
)

type messagePayload struct {
	SenderID string `json:"sender_id"`
	Text     string `json:"text"`
}

// parseMessage builds a fan-out input from a channel named chat:{channelId}:message:{messageId}.
func parseMessage(channel, payload string) (fanout.ProcessMessageInput, error) {
	parts := strings.Split(channel, ":")
	if len(parts) != 4 || parts[0] != "chat" || parts[2] != "message" || parts[1] == "" || parts[3] == "" {
		return fanout.ProcessMessageInput{}, fmt.Errorf("%w: %q", errInvalidChannel, channel)
	}

	var p messagePayload
	if err := json.Unmarshal([]byte(payload), &p); err != nil {
		return fanout.ProcessMessageInput{}, fmt.Errorf("%w: %v", errInvalidPayload, err)
	}

	return fanout.ProcessMessageInput{
		Event: model.MessageEvent{
			ChannelID: parts[1],
			MessageID: parts[3],
			SenderID:  p.SenderID,
			Text:      p.Text,
		},
		Source: fanout.SourceRedis,
	}, nil
}
