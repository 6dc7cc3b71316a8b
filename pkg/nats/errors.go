package nats

import "errors"

var ErrURLRequired = errors.New("nats: url is required")
