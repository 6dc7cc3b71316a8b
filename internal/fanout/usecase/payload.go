package usecase

import (
	"chat-notification-srv/internal/model"
	"chat-notification-srv/pkg/push"
)

func (uc *implUseCase) buildPayload(event model.MessageEvent, senderName, token string) model.NotificationPayload {
	body := event.Text
	if !event.HasText() {
		body = uc.cfg.AttachmentBody
	}

	return model.NotificationPayload{
		Title:  TitlePrefix + senderName,
		Body:   body,
		Target: token,
		Data: map[string]string{
			model.DataKeyChannelID: event.ChannelID,
			model.DataKeyMessageID: event.MessageID,
			model.DataKeySenderID:  event.SenderID,
		},
		Sound: uc.cfg.Sound,
	}
}

func toPushMessage(p model.NotificationPayload) push.Message {
	return push.Message{
		Token: p.Target,
		Title: p.Title,
		Body:  p.Body,
		Data:  p.Data,
		Sound: p.Sound,
	}
}
