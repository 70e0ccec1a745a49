package request

import "errors"

var (
	ErrRequestIDRequired = errors.New("request id is required")
	ErrInvalidStatus     = errors.New("status must be fulfilled or cancelled")
	ErrNotActive         = errors.New("request is no longer active")
)
