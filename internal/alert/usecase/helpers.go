package usecase

import (
	"fmt"

	"chat-notification-srv/pkg/discord"
)

const (
	footerText = "Notification Service • Fan-out"
	// maxListedFailures bounds the failure list in a delivery report.
	maxListedFailures = 5
)

func buildField(name string, value string, inline bool) discord.EmbedField {
	if value == "" {
		value = "N/A"
	}
	return discord.EmbedField{
		Name:   name,
		Value:  discord.Truncate(value, discord.MaxFieldValueLen),
		Inline: inline,
	}
}

func formatInt(n int) string {
	return fmt.Sprintf("%d", n)
}
