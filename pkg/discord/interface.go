package discord

import (
	"context"

	"chat-notification-srv/pkg/log"
)

type IDiscord interface {
	SendMessage(ctx context.Context, content string) error
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	ReportBug(ctx context.Context, message string) error
	Close() error
}

// New creates a Discord webhook client. Logger can be nil.
func New(l log.Logger, webhookID, webhookToken string) (IDiscord, error) {
	return NewWithConfig(l, webhookID, webhookToken, DefaultConfig())
}

// NewWithConfig creates a Discord webhook client with custom timeouts and retries.
func NewWithConfig(l log.Logger, webhookID, webhookToken string, cfg Config) (IDiscord, error) {
	if webhookID == "" || webhookToken == "" {
		return nil, errWebhookRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &discordImpl{
		l:       l,
		webhook: &webhookInfo{id: webhookID, token: webhookToken},
		config:  cfg,
		client:  newHTTPClient(cfg.Timeout),
	}, nil
}
