// Package apperr holds the sentinel errors shared across layers.
// Handlers map them to HTTP statuses with errors.Is.
package apperr

import "errors"

var (
	ErrValidation    = errors.New("validation failed")
	ErrNotFound      = errors.New("not found")
	ErrNotConfigured = errors.New("not configured")
	ErrUpstream      = errors.New("upstream failure")
)
