package push

import (
	"context"

	"firebase.google.com/go/v4/messaging"
)

func (p *fcmImpl) Send(ctx context.Context, msg Message) (string, error) {
	if msg.Token == "" {
		return "", ErrEmptyToken
	}

	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	if err := p.limiter.Wait(ctx); err != nil {
		return "", err
	}

	send := p.sender.Send
	if p.cfg.DryRun {
		send = p.sender.SendDryRun
	}

	id, err := send(ctx, buildMessage(msg))
	if err != nil {
		err = classify(err)
		if p.l != nil {
			p.l.Debugf(ctx, "pkg.push.Send: %v", err)
		}
		return "", err
	}

	return id, nil
}

func buildMessage(msg Message) *messaging.Message {
	m := &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}
	if msg.Sound != "" {
		m.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{Sound: msg.Sound},
			},
		}
	}
	return m
}
