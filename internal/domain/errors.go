package domain

import "errors"

// Sentinel errors shared by services, adapters and the delivery layer.
var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation failed")
	ErrUpstream     = errors.New("hub backend request failed")
)
