package useragent

import (
	"math/rand"
	"testing"
)

func TestNewPool_DefaultsOnEmpty(t *testing.T) {
	tests := []struct {
		name   string
		agents []string
	}{
		{name: "nil list", agents: nil},
		{name: "empty list", agents: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool := NewPool(tt.agents)

			got := pool.Agents()
			if len(got) != len(DefaultAgents) {
				t.Fatalf("Agents() returned %d entries, want %d", len(got), len(DefaultAgents))
			}
			for i, agent := range got {
				if agent != DefaultAgents[i] {
					t.Errorf("Agents()[%d] = %q, want %q", i, agent, DefaultAgents[i])
				}
			}
		})
	}
}

func TestPool_RandomStaysInPool(t *testing.T) {
	agents := []string{"agent-a", "agent-b", "agent-c"}
	pool := NewPool(agents)

	valid := map[string]bool{}
	for _, a := range agents {
		valid[a] = true
	}

	for i := 0; i < 50; i++ {
		if got := pool.Random(); !valid[got] {
			t.Fatalf("Random() = %q, not in pool %v", got, agents)
		}
	}
}

func TestPool_DeterministicWithFixedSource(t *testing.T) {
	agents := []string{"agent-a", "agent-b", "agent-c"}

	p1 := NewPoolWithSource(agents, rand.NewSource(42))
	p2 := NewPoolWithSource(agents, rand.NewSource(42))

	for i := 0; i < 20; i++ {
		a, b := p1.Random(), p2.Random()
		if a != b {
			t.Fatalf("Pick %d: pools with the same seed diverged: %q vs %q", i, a, b)
		}
	}
}

func TestPool_SingleAgent(t *testing.T) {
	pool := NewPool([]string{"only-agent"})

	for i := 0; i < 10; i++ {
		if got := pool.Random(); got != "only-agent" {
			t.Errorf("Random() = %q, want %q", got, "only-agent")
		}
	}
}

func TestPool_AgentsReturnsCopy(t *testing.T) {
	pool := NewPool([]string{"agent-a", "agent-b"})

	got := pool.Agents()
	got[0] = "mutated"

	if pool.Agents()[0] != "agent-a" {
		t.Error("Mutating the returned slice changed the pool's agent list")
	}
}
