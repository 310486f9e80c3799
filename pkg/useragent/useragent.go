// Package useragent provides the User-Agent pool used when creating
// fetch sessions. One agent is picked at random per session and stays
// fixed for the session's lifetime.
package useragent

import (
	"math/rand"
	"sync"
	"time"
)

// DefaultAgents is the built-in pool of desktop browser User-Agent
// strings. Kept deliberately small: rotating across a handful of
// common agents is enough to avoid a single static fingerprint.
var DefaultAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Safari/605.1.15",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36",
}

// Pool selects User-Agent strings at random from a fixed list.
type Pool struct {
	mu     sync.Mutex
	agents []string
	rng    *rand.Rand
}

// NewPool creates a pool over the given agents, seeded from the clock.
// An empty or nil list falls back to DefaultAgents.
func NewPool(agents []string) *Pool {
	return NewPoolWithSource(agents, rand.NewSource(time.Now().UnixNano()))
}

// NewPoolWithSource creates a pool with an explicit random source so
// tests can make selection deterministic.
func NewPoolWithSource(agents []string, src rand.Source) *Pool {
	if len(agents) == 0 {
		agents = DefaultAgents
	}
	return &Pool{
		agents: agents,
		rng:    rand.New(src),
	}
}

// Random returns one agent from the pool. Safe for concurrent use.
func (p *Pool) Random() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.agents[p.rng.Intn(len(p.agents))]
}

// Agents returns a copy of the pool's agent list.
func (p *Pool) Agents() []string {
	out := make([]string, len(p.agents))
	copy(out, p.agents)
	return out
}
