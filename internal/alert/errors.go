package alert

import "errors"

var (
	ErrDispatchFailed = errors.New("failed to dispatch alert")
)
