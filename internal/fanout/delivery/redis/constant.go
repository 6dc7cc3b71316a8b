package redis

const (
	// ChannelPattern matches chat:{channelId}:message:{messageId}.
	ChannelPattern = "chat:*:message:*"

	DefaultMaxInFlight = 16
)
