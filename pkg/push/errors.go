package push

import (
	"errors"
	"fmt"

	"firebase.google.com/go/v4/messaging"
)

var (
	ErrSenderRequired    = errors.New("push: sender is required")
	ErrEmptyToken        = errors.New("push: empty device token")
	ErrTokenUnregistered = errors.New("push: token unregistered")
	ErrInvalidArgument   = errors.New("push: invalid argument")
	ErrSenderIDMismatch  = errors.New("push: sender id mismatch")
	ErrQuotaExceeded     = errors.New("push: quota exceeded")
	ErrUnavailable       = errors.New("push: gateway unavailable")
)

// classify maps FCM error codes to package sentinels, keeping the original text.
func classify(err error) error {
	var sentinel error
	switch {
	case messaging.IsUnregistered(err):
		sentinel = ErrTokenUnregistered
	case messaging.IsInvalidArgument(err):
		sentinel = ErrInvalidArgument
	case messaging.IsSenderIDMismatch(err):
		sentinel = ErrSenderIDMismatch
	case messaging.IsQuotaExceeded(err):
		sentinel = ErrQuotaExceeded
	case messaging.IsUnavailable(err), messaging.IsInternal(err):
		sentinel = ErrUnavailable
	default:
		return fmt.Errorf("push: send: %w", err)
	}
	return fmt.Errorf("%w: %v", sentinel, err)
}
