// Package testutil provides testing utilities for the fetcher.
package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"time"
)

// Response defines the behavior of a mock origin endpoint.
type Response struct {
	StatusCode int
	Body       string
	Headers    map[string]string
	Delay      time.Duration
}

// MockOrigin is a configurable mock HTTP origin for testing. It counts
// requests per path and tracks the peak number of simultaneously open
// requests, which lets tests assert the fetcher's concurrency bound.
type MockOrigin struct {
	server   *httptest.Server
	mu       sync.RWMutex
	handlers map[string]func(w http.ResponseWriter, r *http.Request)

	// Tracking
	requestCount      int
	pathCounts        map[string]int
	inFlight          int
	maxInFlight       int
	lastRequestHeader http.Header
}

// NewMockOrigin creates a new mock origin server.
func NewMockOrigin() *MockOrigin {
	mock := &MockOrigin{
		handlers:   make(map[string]func(w http.ResponseWriter, r *http.Request)),
		pathCounts: make(map[string]int),
	}

	mock.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mock.mu.Lock()
		mock.requestCount++
		mock.pathCounts[r.URL.Path]++
		mock.lastRequestHeader = r.Header.Clone()
		mock.inFlight++
		if mock.inFlight > mock.maxInFlight {
			mock.maxInFlight = mock.inFlight
		}
		mock.mu.Unlock()

		defer func() {
			mock.mu.Lock()
			mock.inFlight--
			mock.mu.Unlock()
		}()

		mock.mu.RLock()
		handler, exists := mock.handlers[r.URL.Path]
		mock.mu.RUnlock()

		if exists {
			handler(w, r)
			return
		}

		mock.defaultHandler(w, r)
	}))

	return mock
}

// URL returns the mock server URL.
func (m *MockOrigin) URL() string {
	return m.server.URL
}

// Close shuts down the mock server.
func (m *MockOrigin) Close() {
	m.server.Close()
}

// Reset clears all tracking counters.
func (m *MockOrigin) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount = 0
	m.pathCounts = make(map[string]int)
	m.maxInFlight = 0
	m.lastRequestHeader = nil
}

// SetHandler sets a custom handler for a specific path.
func (m *MockOrigin) SetHandler(path string, handler func(w http.ResponseWriter, r *http.Request)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.handlers[path] = handler
}

// SetResponse configures a canned response for a path.
func (m *MockOrigin) SetResponse(path string, resp Response) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		if resp.Delay > 0 {
			time.Sleep(resp.Delay)
		}

		for key, value := range resp.Headers {
			w.Header().Set(key, value)
		}

		status := resp.StatusCode
		if status == 0 {
			status = http.StatusOK
		}
		w.WriteHeader(status)
		if resp.Body != "" {
			w.Write([]byte(resp.Body))
		}
	})
}

// SetBody configures a 200 OK response with the given body for a path.
func (m *MockOrigin) SetBody(path, body string) {
	m.SetResponse(path, Response{StatusCode: http.StatusOK, Body: body})
}

// FailThenSucceed configures a path that drops the connection for the
// first `failures` requests, then serves a 200 OK with the given body.
// Dropping the connection makes the client see a transport error,
// which is what drives the fetcher's retry loop.
func (m *MockOrigin) FailThenSucceed(path string, failures int, body string) {
	var mu sync.Mutex
	seen := 0

	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		seen++
		fail := seen <= failures
		mu.Unlock()

		if fail {
			hj, ok := w.(http.Hijacker)
			if !ok {
				panic("testutil: response writer does not support hijacking")
			}
			conn, _, err := hj.Hijack()
			if err != nil {
				panic("testutil: hijack failed: " + err.Error())
			}
			conn.Close()
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(body))
	})
}

// AlwaysFail configures a path that drops every connection.
func (m *MockOrigin) AlwaysFail(path string) {
	m.SetHandler(path, func(w http.ResponseWriter, r *http.Request) {
		hj, ok := w.(http.Hijacker)
		if !ok {
			panic("testutil: response writer does not support hijacking")
		}
		conn, _, err := hj.Hijack()
		if err != nil {
			panic("testutil: hijack failed: " + err.Error())
		}
		conn.Close()
	})
}

// RequestCount returns the total number of requests served.
func (m *MockOrigin) RequestCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.requestCount
}

// PathCount returns the number of requests served for one path.
func (m *MockOrigin) PathCount(path string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pathCounts[path]
}

// MaxInFlight returns the peak number of simultaneously open requests.
func (m *MockOrigin) MaxInFlight() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.maxInFlight
}

// LastUserAgent returns the User-Agent header of the most recent request.
func (m *MockOrigin) LastUserAgent() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.lastRequestHeader == nil {
		return ""
	}
	return m.lastRequestHeader.Get("User-Agent")
}

// defaultHandler serves a plain 200 OK for unconfigured paths.
func (m *MockOrigin) defaultHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
