package discord

import "errors"

var (
	errWebhookRequired = errors.New("discord: webhook id and token are required")
	ErrMessageTooLong  = errors.New("discord: message too long")
	ErrEmbedTooLong    = errors.New("discord: embed too long")
)
