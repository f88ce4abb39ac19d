package domain

import "errors"

// error taxonomy shared by all packages; wrap with fmt.Errorf("...: %w", ErrX) and test with errors.Is
var (
	ErrValidation      = errors.New("validation error")
	ErrNotFound        = errors.New("not found")
	ErrExternalService = errors.New("external service error")
	ErrDatabase        = errors.New("database error")
	ErrTimeout         = errors.New("timeout")
	ErrRateLimit       = errors.New("rate limit exceeded")
	ErrConflict        = errors.New("conflict")
)
