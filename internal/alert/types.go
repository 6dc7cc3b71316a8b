package alert

import "time"

// EventAbortedInput describes a message event that produced no notifications
// because a store lookup failed.
type EventAbortedInput struct {
	ChannelID  string
	MessageID  string
	SenderID   string
	Source     string // e.g. "http", "redis", "nats"
	Reason     string
	OccurredAt time.Time
}

// RecipientFailure is a single failed delivery.
type RecipientFailure struct {
	RecipientID string
	Reason      string
}

// DeliveryReportInput summarises an event whose fan-out had failed deliveries.
type DeliveryReportInput struct {
	ChannelID          string
	MessageID          string
	SenderID           string
	Recipients         int
	Sent               int
	SkippedNoToken     int
	SkippedUnknownUser int
	Failed             int
	Failures           []RecipientFailure
	Duration           time.Duration
}
