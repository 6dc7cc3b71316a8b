package http

import (
	"errors"
	"net/http"

	"chat-notification-srv/internal/fanout"
	pkgErrors "chat-notification-srv/pkg/errors"

	"github.com/go-playground/validator/v10"
)

const codeInvalidField = 140003

var (
	errInvalidBody     = pkgErrors.NewHTTPError(140001, "Invalid request body", http.StatusBadRequest)
	errInvalidEvent    = pkgErrors.NewHTTPError(140002, "Invalid message event", http.StatusBadRequest)
	errChannelNotFound = pkgErrors.NewHTTPError(140401, "Channel not found", http.StatusNotFound)
	errSenderNotFound  = pkgErrors.NewHTTPError(140402, "Sender not found", http.StatusNotFound)
)

// mapError translates use case errors into HTTP errors. Unknown errors are returned as is.
func (h Handler) mapError(err error) (error, bool) {
	switch {
	case errors.Is(err, fanout.ErrInvalidEvent):
		return invalidEventError(err), true
	case errors.Is(err, fanout.ErrChannelNotFound):
		return errChannelNotFound, true
	case errors.Is(err, fanout.ErrSenderNotFound):
		return errSenderNotFound, true
	default:
		return err, false
	}
}

// invalidEventError names each offending field when the validator reported them.
func invalidEventError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return errInvalidEvent
	}

	collector := pkgErrors.NewValidationErrorCollector()
	for _, fe := range verrs {
		collector.Add(pkgErrors.NewValidationError(codeInvalidField, fe.Field(), fieldMessage(fe)))
	}
	return collector
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "must not be blank"
	default:
		return "is invalid"
	}
}
