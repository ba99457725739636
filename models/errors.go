package models

import "errors"

// Domain errors. Controllers translate these into HTTP status codes:
// ErrNotFound -> 404, ErrValidation -> 422, ErrConflict -> 409,
// ErrStorage -> 500 (retryable by the caller, never retried here).
var (
	ErrNotFound   = errors.New("record not found")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflicting write")
	ErrStorage    = errors.New("storage unavailable")
)
