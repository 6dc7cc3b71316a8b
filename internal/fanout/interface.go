package fanout

import "context"

// UseCase fans a created chat message out to the channel's members as push notifications.
type UseCase interface {
	// ProcessMessage handles one message-created event. Per-recipient failures are
	// reported as outcomes; an error means the whole event was aborted.
	ProcessMessage(ctx context.Context, input ProcessMessageInput) (ProcessMessageOutput, error)

	// Shutdown waits for ops alerts still being sent, or until ctx is done.
	Shutdown(ctx context.Context) error
}
