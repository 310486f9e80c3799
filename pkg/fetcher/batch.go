package fetcher

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/semaphore"
)

// Result is the outcome of fetching a single URL within a batch.
type Result struct {
	URL  string
	Body string
	Err  error
}

// OK reports whether the fetch succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// FetchAll fetches an ordered list of URLs one at a time, inserting a
// random delay from [MinDelay, MaxDelay] before every URL except the
// first. Results are returned in input order; a failed URL does not
// abort the batch.
func (f *Fetcher) FetchAll(ctx context.Context, urls []string) []Result {
	results := make([]Result, 0, len(urls))
	if len(urls) == 0 {
		return results
	}

	f.ensureSession()

	start := time.Now()
	f.logger.Info().
		Int("urls", len(urls)).
		Msg("Starting sequential fetch")

	for i, url := range urls {
		if i > 0 {
			if err := f.pacer.Wait(ctx); err != nil {
				// Degrade this and all remaining slots; the result
				// slice keeps one entry per input URL.
				for _, remaining := range urls[i:] {
					results = append(results, Result{
						URL: remaining,
						Err: fmt.Errorf("%w: %v", ErrContextCancelled, err),
					})
				}
				return results
			}
		}

		body, err := f.Fetch(ctx, url)
		results = append(results, Result{URL: url, Body: body, Err: err})
	}

	f.logger.Info().
		Int("urls", len(urls)).
		Dur("duration", time.Since(start)).
		Msg("Sequential fetch complete")

	return results
}

// FetchAllConcurrent fetches many URLs in parallel, bounding the number
// of simultaneously active fetches with an admission gate of
// ConcurrentTasks permits. Every URL gets its own goroutine, launched
// immediately; a goroutine acquires a permit, sleeps the random delay
// while holding it, fetches, and releases. Results are returned in
// input order regardless of completion order.
func (f *Fetcher) FetchAllConcurrent(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))
	if len(urls) == 0 {
		return results
	}

	f.ensureSession()

	start := time.Now()
	f.logger.Info().
		Int("urls", len(urls)).
		Int("concurrent_tasks", f.config.ConcurrentTasks).
		Msg("Starting concurrent fetch")

	// The gate belongs to this invocation only; concurrent calls do
	// not share permits.
	gate := semaphore.NewWeighted(int64(f.config.ConcurrentTasks))

	var wg sync.WaitGroup
	for i, url := range urls {
		wg.Add(1)
		go func(slot int, url string) {
			defer wg.Done()

			if err := gate.Acquire(ctx, 1); err != nil {
				results[slot] = Result{
					URL: url,
					Err: fmt.Errorf("%w: %v", ErrContextCancelled, err),
				}
				return
			}
			defer gate.Release(1)

			// The delay happens after acquiring the permit, padding
			// the time a permit is held.
			if err := f.pacer.Wait(ctx); err != nil {
				results[slot] = Result{
					URL: url,
					Err: fmt.Errorf("%w: %v", ErrContextCancelled, err),
				}
				return
			}

			body, err := f.Fetch(ctx, url)
			results[slot] = Result{URL: url, Body: body, Err: err}
		}(i, url)
	}
	wg.Wait()

	f.logger.Info().
		Int("urls", len(urls)).
		Dur("duration", time.Since(start)).
		Msg("Concurrent fetch complete")

	return results
}
