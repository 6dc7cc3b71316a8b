package nats

const (
	DefaultSubject     = "chat.message.created"
	DefaultMaxInFlight = 16
)
