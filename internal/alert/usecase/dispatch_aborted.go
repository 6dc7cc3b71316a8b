package usecase

import (
	"context"
	"fmt"
	"time"

	"chat-notification-srv/internal/alert"
	"chat-notification-srv/pkg/discord"
)

func (uc *implUseCase) DispatchEventAborted(ctx context.Context, input alert.EventAbortedInput) error {
	if uc.discord == nil {
		return nil
	}

	fields := []discord.EmbedField{
		buildField("Channel", input.ChannelID, true),
		buildField("Message", input.MessageID, true),
		buildField("Sender", input.SenderID, true),
		buildField("Source", input.Source, true),
		buildField("Reason", input.Reason, false),
	}

	occurredAt := input.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}

	opts := discord.MessageOptions{
		Type:        discord.MessageTypeError,
		Title:       "Fan-out aborted",
		Description: fmt.Sprintf("No notifications were sent for message **%s** in channel **%s**.", input.MessageID, input.ChannelID),
		Fields:      fields,
		Timestamp:   occurredAt,
		Footer:      &discord.EmbedFooter{Text: footerText},
	}

	if err := uc.discord.SendEmbed(ctx, opts); err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.DispatchEventAborted.SendEmbed: %v", err)
		return fmt.Errorf("%w: %v", alert.ErrDispatchFailed, err)
	}
	return nil
}
