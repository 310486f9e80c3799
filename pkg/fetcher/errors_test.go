package fetcher

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelErrors_Unwrap(t *testing.T) {
	cause := errors.New("connection refused")

	wrapped := fmt.Errorf("%w after 3 attempts: %v", ErrRetryExhausted, cause)
	if !errors.Is(wrapped, ErrRetryExhausted) {
		t.Error("Wrapped exhaustion error should match ErrRetryExhausted")
	}
	if errors.Is(wrapped, ErrContextCancelled) {
		t.Error("Exhaustion error should not match ErrContextCancelled")
	}

	cancelled := fmt.Errorf("%w: %v", ErrContextCancelled, cause)
	if !errors.Is(cancelled, ErrContextCancelled) {
		t.Error("Wrapped cancellation error should match ErrContextCancelled")
	}
}
