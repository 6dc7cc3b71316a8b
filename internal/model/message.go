package model

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
	validateErr  error
)

func eventValidator() (*validator.Validate, error) {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Report fields by their JSON name (channel_id, sender_id).
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return f.Name
			}
			return name
		})
		validateErr = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})
		validate = v
	})
	return validate, validateErr
}

// MessageEvent describes a chat message that was just created.
// Text is empty for attachment-only messages.
type MessageEvent struct {
	ChannelID string `json:"channel_id" validate:"notblank"`
	MessageID string `json:"message_id"`
	SenderID  string `json:"sender_id" validate:"notblank"`
	Text      string `json:"text,omitempty"`
}

// Validate reports whether the event carries the ids needed to fan it out.
// Field failures are returned as validator.ValidationErrors.
func (e MessageEvent) Validate() error {
	v, err := eventValidator()
	if err != nil {
		return err
	}
	return v.Struct(e)
}

// HasText reports whether the message carries any text.
func (e MessageEvent) HasText() bool {
	return e.Text != ""
}
