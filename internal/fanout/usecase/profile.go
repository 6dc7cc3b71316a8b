package usecase

import (
	"context"
	"errors"
	"strings"

	"chat-notification-srv/internal/directory/repository"
	"chat-notification-srv/internal/model"
)

// resolveSenderName prefers the display name, then the user name, then fallback.
func resolveSenderName(sender model.UserProfile, fallback string) string {
	if name := strings.TrimSpace(sender.DisplayName); name != "" {
		return name
	}
	if name := strings.TrimSpace(sender.UserName); name != "" {
		return name
	}
	return fallback
}

// resolveRecipient looks up a recipient profile. When ok is false the returned
// outcome is final for that recipient.
func (uc *implUseCase) resolveRecipient(ctx context.Context, recipientID string) (profile model.UserProfile, outcome model.DispatchOutcome, ok bool) {
	profile, err := uc.repo.GetUser(ctx, recipientID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			uc.l.Debugf(ctx, "internal.fanout.usecase.resolveRecipient: unknown user %s", recipientID)
			return model.UserProfile{}, model.SkippedUnknownUser(recipientID), false
		}
		uc.l.Errorf(ctx, "internal.fanout.usecase.resolveRecipient.GetUser: recipient=%s: %v", recipientID, err)
		return model.UserProfile{}, model.Failed(recipientID, err.Error()), false
	}
	return profile, model.DispatchOutcome{}, true
}
