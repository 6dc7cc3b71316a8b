package usecase

import (
	"strings"

	"chat-notification-srv/internal/model"
)

// resolveToken returns the recipient's push token; ok is false when none is registered.
func resolveToken(profile model.UserProfile) (string, bool) {
	token := strings.TrimSpace(profile.PushToken)
	return token, token != ""
}
