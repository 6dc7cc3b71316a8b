package usecase

import (
	"context"
	"fmt"
	"sync"

	"chat-notification-srv/internal/model"
)

// dispatch runs the per-recipient pipeline on a bounded worker pool.
// The result has exactly one outcome per recipient, at the recipient's index.
func (uc *implUseCase) dispatch(ctx context.Context, event model.MessageEvent, senderName string, recipients []string) []model.DispatchOutcome {
	outcomes := make([]model.DispatchOutcome, len(recipients))
	if len(recipients) == 0 {
		return outcomes
	}

	workers := uc.cfg.Workers
	if workers > len(recipients) {
		workers = len(recipients)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = uc.dispatchOne(ctx, event, senderName, recipients[i])
			}
		}()
	}

	for i := range recipients {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

func (uc *implUseCase) dispatchOne(ctx context.Context, event model.MessageEvent, senderName, recipientID string) (outcome model.DispatchOutcome) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "internal.fanout.usecase.dispatchOne: recovered panic for recipient %s: %v", recipientID, r)
			outcome = model.Failed(recipientID, fmt.Sprintf("panic: %v", r))
		}
	}()

	profile, outcome, ok := uc.resolveRecipient(ctx, recipientID)
	if !ok {
		return outcome
	}

	token, ok := resolveToken(profile)
	if !ok {
		return model.SkippedNoToken(recipientID)
	}

	payload := uc.buildPayload(event, senderName, token)
	id, err := uc.gateway.Send(ctx, toPushMessage(payload))
	if err != nil {
		uc.l.Warnf(ctx, "internal.fanout.usecase.dispatchOne.Send: recipient=%s: %v", recipientID, err)
		return model.Failed(recipientID, err.Error())
	}

	return model.Sent(recipientID, id)
}
