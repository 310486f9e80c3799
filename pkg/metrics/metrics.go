// Package metrics documents the Prometheus metrics exposed by the
// fetcher. Metrics are defined in pkg/fetcher via promauto to keep
// them next to the code that drives them; this package provides the
// registry reference and documentation.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the fetcher.
// All metrics are automatically registered via promauto.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Fetch Metrics (pkg/fetcher):
//   - fetch_requests_total{outcome} (Counter): Fetch attempts by outcome
//     (success, failure)
//   - fetch_request_duration_seconds (Histogram): Duration of individual
//     fetch attempts
//   - fetch_retries_total (Counter): Retry attempts scheduled after a
//     failed attempt
//   - fetch_retry_exhausted_total (Counter): URLs that exhausted all
//     retry attempts
//   - fetch_in_flight (Gauge): Fetch operations currently in flight
//
// Example Prometheus Queries:
//
//   # Attempt failure rate
//   rate(fetch_requests_total{outcome="failure"}[5m]) /
//   rate(fetch_requests_total[5m])
//
//   # Exhaustion rate (URLs lost after retries)
//   rate(fetch_retry_exhausted_total[5m])
//
//   # P95 attempt latency
//   histogram_quantile(0.95, rate(fetch_request_duration_seconds_bucket[5m]))
//
//   # Current concurrency
//   fetch_in_flight
