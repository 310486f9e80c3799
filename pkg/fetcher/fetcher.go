package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/politefetch/politefetch/pkg/pacing"
	"github.com/politefetch/politefetch/pkg/useragent"
)

// Prometheus metrics for fetch operations.
var (
	fetchRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "fetch_requests_total",
		Help: "Total fetch attempts by outcome",
	}, []string{"outcome"})

	fetchRequestDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "fetch_request_duration_seconds",
		Help:    "Duration of individual fetch attempts in seconds",
		Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
	})

	fetchRetriesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fetch_retries_total",
		Help: "Total number of retry attempts",
	})

	fetchRetryExhaustedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "fetch_retry_exhausted_total",
		Help: "Total number of URLs that exhausted all retry attempts",
	})

	fetchInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "fetch_in_flight",
		Help: "Number of fetch operations currently in flight",
	})
)

// retryDelay is the fixed pause between failed attempts of a single
// URL. The configurable random delay is reserved for inter-URL pacing.
const retryDelay = 1 * time.Second

// Fetcher fetches URL bodies over HTTP(S) with retry, pacing, and a
// bounded concurrency limit. It owns one lazily-created session; the
// caller must invoke Close when done with it.
type Fetcher struct {
	config Config
	agents *useragent.Pool
	pacer  *pacing.Provider
	logger zerolog.Logger

	mu      sync.Mutex
	state   sessionState
	session *session

	// retryDelay is the inter-attempt pause, shortened in tests.
	retryDelay time.Duration
}

// New creates a new Fetcher.
func New(cfg Config) (*Fetcher, error) {
	if cfg.Timeout <= 0 {
		return nil, fmt.Errorf("timeout must be > 0 (got %v)", cfg.Timeout)
	}
	if cfg.MaxConnections < 1 {
		return nil, fmt.Errorf("max_connections must be >= 1 (got %d)", cfg.MaxConnections)
	}
	if cfg.MaxRetries < 0 {
		return nil, fmt.Errorf("max_retries must be >= 0 (got %d)", cfg.MaxRetries)
	}
	if cfg.ConcurrentTasks < 1 {
		return nil, fmt.Errorf("concurrent_tasks must be >= 1 (got %d)", cfg.ConcurrentTasks)
	}

	pacer, err := pacing.NewProvider(cfg.MinDelay, cfg.MaxDelay)
	if err != nil {
		return nil, fmt.Errorf("delay bounds: %w", err)
	}

	logger := log.With().Str("component", "fetcher").Logger()

	return &Fetcher{
		config:     cfg,
		agents:     useragent.NewPool(cfg.UserAgents),
		pacer:      pacer,
		logger:     logger,
		retryDelay: retryDelay,
	}, nil
}

// Fetch retrieves one URL's body, retrying failures up to MaxRetries
// attempts with a fixed pause between attempts. On success the body is
// returned as UTF-8 text. When all attempts fail, the error wraps
// ErrRetryExhausted.
//
// MaxRetries of 0 means zero attempts: Fetch reports exhaustion
// without issuing any request.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	sess := f.ensureSession()

	fetchInFlight.Inc()
	defer fetchInFlight.Dec()

	var lastErr error
	for attempt := 0; attempt < f.config.MaxRetries; attempt++ {
		start := time.Now()
		body, err := f.fetchOnce(ctx, sess, url)
		fetchRequestDuration.Observe(time.Since(start).Seconds())

		if err == nil {
			fetchRequestsTotal.WithLabelValues("success").Inc()
			if attempt > 0 {
				f.logger.Info().
					Str("url", url).
					Int("attempt", attempt+1).
					Msg("Fetch succeeded after retry")
			} else {
				f.logger.Debug().
					Str("url", url).
					Msg("Fetch succeeded")
			}
			return body, nil
		}

		lastErr = err
		fetchRequestsTotal.WithLabelValues("failure").Inc()
		f.logger.Warn().
			Err(err).
			Str("url", url).
			Int("attempt", attempt+1).
			Int("max_retries", f.config.MaxRetries).
			Msg("Fetch attempt failed")

		// Pause only between attempts, never after the last one.
		if attempt+1 >= f.config.MaxRetries {
			break
		}
		fetchRetriesTotal.Inc()

		select {
		case <-ctx.Done():
			f.logger.Warn().
				Str("url", url).
				Int("attempt", attempt+1).
				Msg("Context cancelled during retry pause")
			return "", fmt.Errorf("%w: %v", ErrContextCancelled, ctx.Err())
		case <-time.After(f.retryDelay):
		}
	}

	fetchRetryExhaustedTotal.Inc()
	f.logger.Warn().
		Str("url", url).
		Int("max_retries", f.config.MaxRetries).
		Msg("Giving up after exhausting retries")

	if lastErr != nil {
		return "", fmt.Errorf("%w after %d attempts: %v", ErrRetryExhausted, f.config.MaxRetries, lastErr)
	}
	return "", fmt.Errorf("%w after 0 attempts", ErrRetryExhausted)
}

// fetchOnce performs a single GET attempt. Status codes are not
// errors; only transport failures, body read failures, and bodies that
// are not valid UTF-8 fail the attempt.
func (f *Fetcher) fetchOnce(ctx context.Context, sess *session, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", sess.userAgent)

	resp, err := sess.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if !utf8.Valid(raw) {
		return "", fmt.Errorf("body is not valid UTF-8")
	}

	return string(raw), nil
}
