// Package pacing implements randomized inter-request delays. Spreading
// requests over a uniform random interval avoids bursty traffic against
// the origin and keeps the request cadence from forming a fingerprint.
package pacing

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Provider draws delays uniformly at random from a fixed [min, max]
// interval. Safe for concurrent use.
type Provider struct {
	mu  sync.Mutex
	min time.Duration
	max time.Duration
	rng *rand.Rand
}

// NewProvider creates a provider over [min, max], seeded from the clock.
func NewProvider(min, max time.Duration) (*Provider, error) {
	return NewProviderWithSource(min, max, rand.NewSource(time.Now().UnixNano()))
}

// NewProviderWithSource creates a provider with an explicit random
// source so tests can make delays deterministic.
func NewProviderWithSource(min, max time.Duration, src rand.Source) (*Provider, error) {
	if min < 0 {
		return nil, fmt.Errorf("min delay must be >= 0 (got %v)", min)
	}
	if min > max {
		return nil, fmt.Errorf("min delay %v exceeds max delay %v", min, max)
	}

	return &Provider{
		min: min,
		max: max,
		rng: rand.New(src),
	}, nil
}

// Next returns a delay drawn uniformly from [min, max].
func (p *Provider) Next() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.max == p.min {
		return p.min
	}
	return p.min + time.Duration(p.rng.Int63n(int64(p.max-p.min)+1))
}

// Wait sleeps for the next drawn delay, honoring context cancellation.
// A zero delay returns immediately without touching the clock.
func (p *Provider) Wait(ctx context.Context) error {
	delay := p.Next()
	if delay == 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(delay):
		return nil
	}
}

// Bounds returns the provider's [min, max] interval.
func (p *Provider) Bounds() (time.Duration, time.Duration) {
	return p.min, p.max
}
