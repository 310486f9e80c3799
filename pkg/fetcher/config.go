package fetcher

import (
	"time"
)

// Config holds the fetcher configuration. It is captured at
// construction and immutable thereafter.
type Config struct {
	// Timeout is the overall per-request timeout.
	Timeout time.Duration

	// MaxConnections caps the session's connection pool.
	MaxConnections int

	// MaxRetries is the number of attempts per URL. A value of 0 means
	// no attempts are made and Fetch reports failure immediately.
	MaxRetries int

	// MinDelay and MaxDelay bound the random inter-request delay.
	// The delay paces requests between URLs; it is not the fixed pause
	// between retry attempts of a single URL.
	MinDelay time.Duration
	MaxDelay time.Duration

	// ConcurrentTasks sizes the admission gate for FetchAllConcurrent.
	ConcurrentTasks int

	// UserAgents overrides the built-in User-Agent pool. One agent is
	// chosen at random per session. Empty means the default pool.
	UserAgents []string
}

// DefaultConfig returns a safe default configuration.
func DefaultConfig() Config {
	return Config{
		Timeout:         30 * time.Second,
		MaxConnections:  100,
		MaxRetries:      2,
		MinDelay:        500 * time.Millisecond,
		MaxDelay:        1500 * time.Millisecond,
		ConcurrentTasks: 3,
	}
}
