package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"chat-notification-srv/internal/alert"
	"chat-notification-srv/internal/directory/repository"
	"chat-notification-srv/internal/fanout"
	"chat-notification-srv/internal/model"
	"chat-notification-srv/pkg/log"
)

const alertTimeout = 30 * time.Second

func (uc *implUseCase) ProcessMessage(ctx context.Context, input fanout.ProcessMessageInput) (fanout.ProcessMessageOutput, error) {
	start := uc.clock()
	event := input.Event
	ctx = log.WithFields(ctx,
		"channel_id", event.ChannelID,
		"message_id", event.MessageID,
		"sender_id", event.SenderID,
		"source", input.Source,
	)

	// 1. Validate
	if err := event.Validate(); err != nil {
		uc.l.Warnf(ctx, "internal.fanout.usecase.ProcessMessage.Validate: %v", err)
		observeEvent(resultInvalid, uc.clock().Sub(start))
		return fanout.ProcessMessageOutput{}, fmt.Errorf("%w: %w", fanout.ErrInvalidEvent, err)
	}

	// 2. Channel
	channel, err := uc.repo.GetChannel(ctx, event.ChannelID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "internal.fanout.usecase.ProcessMessage.GetChannel: %v", fanout.ErrChannelNotFound)
			uc.abort(ctx, input, resultChannelNotFound, fanout.ErrChannelNotFound.Error(), start)
			return fanout.ProcessMessageOutput{}, fanout.ErrChannelNotFound
		}
		uc.l.Errorf(ctx, "internal.fanout.usecase.ProcessMessage.GetChannel: %v", err)
		uc.abort(ctx, input, resultError, err.Error(), start)
		return fanout.ProcessMessageOutput{}, fmt.Errorf("%w: get channel: %v", fanout.ErrDirectoryFailure, err)
	}

	// 3. Sender
	sender, err := uc.repo.GetUser(ctx, event.SenderID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.l.Warnf(ctx, "internal.fanout.usecase.ProcessMessage.GetUser: %v", fanout.ErrSenderNotFound)
			uc.abort(ctx, input, resultSenderNotFound, fanout.ErrSenderNotFound.Error(), start)
			return fanout.ProcessMessageOutput{}, fanout.ErrSenderNotFound
		}
		uc.l.Errorf(ctx, "internal.fanout.usecase.ProcessMessage.GetUser: %v", err)
		uc.abort(ctx, input, resultError, err.Error(), start)
		return fanout.ProcessMessageOutput{}, fmt.Errorf("%w: get sender: %v", fanout.ErrDirectoryFailure, err)
	}

	// 4. Recipients
	output := fanout.ProcessMessageOutput{
		SenderName: resolveSenderName(sender, uc.cfg.FallbackSenderName),
		Recipients: resolveRecipients(channel, event.SenderID),
	}
	if len(output.Recipients) == 0 {
		uc.l.Infof(ctx, "internal.fanout.usecase.ProcessMessage: no recipients")
		output.Outcomes = []model.DispatchOutcome{}
		observeEvent(resultNoRecipients, uc.clock().Sub(start))
		return output, nil
	}

	// 5. Dispatch
	output.Outcomes = uc.dispatch(ctx, event, output.SenderName, output.Recipients)

	elapsed := uc.clock().Sub(start)
	counts := output.Counts()
	observeEvent(resultProcessed, elapsed)
	observeOutcomes(counts)

	uc.l.Infof(ctx, "internal.fanout.usecase.ProcessMessage: recipients=%d sent=%d no_token=%d unknown_user=%d failed=%d duration=%s",
		len(output.Recipients),
		counts[model.OutcomeSent],
		counts[model.OutcomeSkippedNoToken],
		counts[model.OutcomeSkippedUnknownUser],
		counts[model.OutcomeFailed],
		elapsed,
	)

	if counts[model.OutcomeFailed] > 0 {
		uc.report(ctx, event, output, counts, elapsed)
	}

	return output, nil
}

// abort records a per-event abort and alerts ops in the background.
func (uc *implUseCase) abort(ctx context.Context, input fanout.ProcessMessageInput, result, reason string, start time.Time) {
	observeEvent(result, uc.clock().Sub(start))
	if uc.alertUC == nil {
		return
	}

	alertInput := alert.EventAbortedInput{
		ChannelID:  input.Event.ChannelID,
		MessageID:  input.Event.MessageID,
		SenderID:   input.Event.SenderID,
		Source:     input.Source,
		Reason:     reason,
		OccurredAt: uc.clock(),
	}
	uc.sendAlert(ctx, func(ctx context.Context) error {
		return uc.alertUC.DispatchEventAborted(ctx, alertInput)
	})
}

func (uc *implUseCase) report(ctx context.Context, event model.MessageEvent, output fanout.ProcessMessageOutput, counts map[model.OutcomeStatus]int, elapsed time.Duration) {
	if uc.alertUC == nil {
		return
	}

	var failures []alert.RecipientFailure
	for _, o := range output.Outcomes {
		if o.Status == model.OutcomeFailed {
			failures = append(failures, alert.RecipientFailure{RecipientID: o.RecipientID, Reason: o.Reason})
		}
	}

	reportInput := alert.DeliveryReportInput{
		ChannelID:          event.ChannelID,
		MessageID:          event.MessageID,
		SenderID:           event.SenderID,
		Recipients:         len(output.Recipients),
		Sent:               counts[model.OutcomeSent],
		SkippedNoToken:     counts[model.OutcomeSkippedNoToken],
		SkippedUnknownUser: counts[model.OutcomeSkippedUnknownUser],
		Failed:             counts[model.OutcomeFailed],
		Failures:           failures,
		Duration:           elapsed,
	}
	uc.sendAlert(ctx, func(ctx context.Context) error {
		return uc.alertUC.DispatchDeliveryReport(ctx, reportInput)
	})
}

// sendAlert runs fn outside the event's cancellation scope.
func (uc *implUseCase) sendAlert(ctx context.Context, fn func(ctx context.Context) error) {
	alertCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), alertTimeout)
	uc.async(func() {
		defer cancel()
		if err := fn(alertCtx); err != nil {
			uc.l.Warnf(alertCtx, "internal.fanout.usecase.sendAlert: %v", err)
		}
	})
}
