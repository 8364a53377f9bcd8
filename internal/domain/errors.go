package domain

import "errors"

// Domain errors.
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrRemoteStatus     = errors.New("unexpected response status")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrConfigExists     = errors.New("config file already exists")
	ErrInvalidConfig    = errors.New("invalid configuration")
	ErrInvalidFormat    = errors.New("invalid output format")
)
