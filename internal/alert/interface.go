package alert

import "context"

// UseCase forwards fan-out incidents to the ops channel.
type UseCase interface {
	DispatchEventAborted(ctx context.Context, input EventAbortedInput) error
	DispatchDeliveryReport(ctx context.Context, input DeliveryReportInput) error
}
