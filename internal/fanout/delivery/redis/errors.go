package redis

import "errors"

var (
	errInvalidChannel = errors.New("invalid channel name")
	errInvalidPayload = errors.New("invalid payload")
)
