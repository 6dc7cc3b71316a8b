package nats

import "time"

const (
	DefaultClientName     = "chat-notification-srv"
	DefaultConnectTimeout = 5 * time.Second
	DefaultReconnectWait  = 2 * time.Second
)
