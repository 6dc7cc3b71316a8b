package push

import "time"

const (
	DefaultTimeout = 10 * time.Second
)
