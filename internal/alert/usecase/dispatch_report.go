package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"chat-notification-srv/internal/alert"
	"chat-notification-srv/pkg/discord"
)

func (uc *implUseCase) DispatchDeliveryReport(ctx context.Context, input alert.DeliveryReportInput) error {
	if uc.discord == nil || input.Failed == 0 {
		return nil
	}

	fields := []discord.EmbedField{
		buildField("Channel", input.ChannelID, true),
		buildField("Message", input.MessageID, true),
		buildField("Sender", input.SenderID, true),
		buildField("Recipients", formatInt(input.Recipients), true),
		buildField("Sent", formatInt(input.Sent), true),
		buildField("Failed", formatInt(input.Failed), true),
		buildField("No Token", formatInt(input.SkippedNoToken), true),
		buildField("Unknown User", formatInt(input.SkippedUnknownUser), true),
		buildField("Duration", input.Duration.Round(time.Millisecond).String(), true),
	}

	if len(input.Failures) > 0 {
		fields = append(fields, buildField("Failures", formatFailures(input.Failures), false))
	}

	// Nothing got through: treat as an outage rather than a partial failure.
	msgType := discord.MessageTypeWarning
	if input.Sent == 0 {
		msgType = discord.MessageTypeError
	}

	opts := discord.MessageOptions{
		Type:        msgType,
		Title:       fmt.Sprintf("Push delivery failures: %d/%d", input.Failed, input.Recipients),
		Description: fmt.Sprintf("Some recipients of message **%s** in channel **%s** were not notified.", input.MessageID, input.ChannelID),
		Fields:      fields,
		Timestamp:   time.Now(),
		Footer:      &discord.EmbedFooter{Text: footerText},
	}

	if err := uc.discord.SendEmbed(ctx, opts); err != nil {
		uc.logger.Errorf(ctx, "internal.alert.usecase.DispatchDeliveryReport.SendEmbed: %v", err)
		return fmt.Errorf("%w: %v", alert.ErrDispatchFailed, err)
	}
	return nil
}

func formatFailures(failures []alert.RecipientFailure) string {
	count := len(failures)
	if count > maxListedFailures {
		count = maxListedFailures
	}

	lines := make([]string, 0, count+1)
	for _, f := range failures[:count] {
		lines = append(lines, fmt.Sprintf("> `%s`: %s", f.RecipientID, f.Reason))
	}
	if extra := len(failures) - count; extra > 0 {
		lines = append(lines, fmt.Sprintf("…and %d more", extra))
	}
	return strings.Join(lines, "\n")
}
