package nats

import (
	"encoding/json"
	"errors"
	"fmt"

	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/internal/model"
)

var errInvalidPayload = errors.New("invalid payload")

type messageCreatedMsg struct {
	ChannelID string `json:"channel_id"`
	MessageID string `json:"message_id"`
	SenderID  string `json:"sender_id"`
	Text      string `json:"text"`
}

func decodeMessage(data []byte) (fanout.ProcessMessageInput, error) {
	var m messageCreatedMsg
	if err := json.Unmarshal(data, &m); err != nil {
		return fanout.ProcessMessageInput{}, fmt.Errorf("%w: %v", errInvalidPayload, err)
	}
	return fanout.ProcessMessageInput{
		Event: model.MessageEvent{
			ChannelID: m.ChannelID,
			MessageID: m.MessageID,
			SenderID:  m.SenderID,
			Text:      m.Text,
		},
		Source: fanout.SourceNATS,
	}, nil
}
