package usecase

import "errors"

var (
	// ErrUsage indicates user input/usage errors.
	ErrUsage = errors.New("usage error")
	// ErrCritical indicates critical failures that should exit with error.
	ErrCritical = errors.New("critical error")
	// ErrProbeFailed indicates the startup measurement could not be taken.
	ErrProbeFailed = errors.New("probe failed")
	// ErrMismatch indicates the cross-check disagreed beyond tolerance.
	ErrMismatch = errors.New("cross-check mismatch")
	// ErrInterrupted indicates a canceled or interrupted operation.
	ErrInterrupted = errors.New("interrupted")
)
