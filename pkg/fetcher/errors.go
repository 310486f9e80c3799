package fetcher

import (
	"errors"
)

// Common errors returned by the fetcher.
var (
	// ErrRetryExhausted is returned when all retry attempts for a URL
	// are exhausted.
	ErrRetryExhausted = errors.New("retry attempts exhausted")

	// ErrContextCancelled is returned when the context is cancelled
	// during a retry pause, an inter-request delay, or a gate wait.
	ErrContextCancelled = errors.New("context cancelled")
)
