package fetcher

import (
	"net/http"
	"time"
)

// sessionState tracks the session lifecycle. The three states are
// explicit so that "recreate after close" is a state transition, not a
// nil check.
type sessionState int

const (
	// sessionUninitialized means no session has ever been created.
	sessionUninitialized sessionState = iota

	// sessionOpen means a live session exists and is reused.
	sessionOpen

	// sessionClosed means Close released the session; the next fetch
	// creates a fresh one.
	sessionClosed
)

// session is the owned HTTP client context: a pooled client bound to
// the fetcher's configuration and one User-Agent fixed for the
// session's lifetime.
type session struct {
	client    *http.Client
	userAgent string
}

// ensureSession returns the live session, creating one if none exists
// or the previous one was closed. Idempotent: no side effects when a
// live session already exists.
func (f *Fetcher) ensureSession() *session {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == sessionOpen {
		return f.session
	}

	transport := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		MaxIdleConns:        f.config.MaxConnections,
		MaxConnsPerHost:     f.config.MaxConnections,
		MaxIdleConnsPerHost: f.config.MaxConnections,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	f.session = &session{
		client: &http.Client{
			Transport: transport,
			Timeout:   f.config.Timeout,
		},
		userAgent: f.agents.Random(),
	}
	f.state = sessionOpen

	f.logger.Debug().
		Str("user_agent", f.session.userAgent).
		Int("max_connections", f.config.MaxConnections).
		Dur("timeout", f.config.Timeout).
		Msg("Session created")

	return f.session
}

// Close releases the session, closing pooled connections. Idempotent:
// calling Close on an already-closed or never-created fetcher is a
// no-op. A fetch after Close creates a new session.
func (f *Fetcher) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.state == sessionOpen {
		f.session.client.CloseIdleConnections()
		f.session = nil
		f.logger.Debug().Msg("Session closed")
	}
	f.state = sessionClosed

	return nil
}
