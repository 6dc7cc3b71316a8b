package fanout

import "chat-notification-srv/internal/model"

const (
	SourceHTTP  = "http"
	SourceRedis = "redis"
	SourceNATS  = "nats"
)

// ProcessMessageInput is one message-created event and where it came from.
type ProcessMessageInput struct {
	Event  model.MessageEvent
	Source string
}

// ProcessMessageOutput holds one outcome per recipient, in recipient order.
type ProcessMessageOutput struct {
	SenderName string
	Recipients []string
	Outcomes   []model.DispatchOutcome
}

// Counts tallies the outcomes per status.
func (o ProcessMessageOutput) Counts() map[model.OutcomeStatus]int {
	return model.CountByStatus(o.Outcomes)
}
