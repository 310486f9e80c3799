package fetcher

import (
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxConnections != 100 {
		t.Errorf("MaxConnections = %d, want 100", cfg.MaxConnections)
	}
	if cfg.MaxRetries != 2 {
		t.Errorf("MaxRetries = %d, want 2", cfg.MaxRetries)
	}
	if cfg.MinDelay != 500*time.Millisecond {
		t.Errorf("MinDelay = %v, want 500ms", cfg.MinDelay)
	}
	if cfg.MaxDelay != 1500*time.Millisecond {
		t.Errorf("MaxDelay = %v, want 1.5s", cfg.MaxDelay)
	}
	if cfg.ConcurrentTasks != 3 {
		t.Errorf("ConcurrentTasks = %d, want 3", cfg.ConcurrentTasks)
	}
}

func TestNew_Validation(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.MinDelay = 0
		cfg.MaxDelay = 0
		return cfg
	}

	tests := []struct {
		name        string
		mutate      func(*Config)
		expectError bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:   "zero retries allowed",
			mutate: func(c *Config) { c.MaxRetries = 0 },
		},
		{
			name:        "zero timeout",
			mutate:      func(c *Config) { c.Timeout = 0 },
			expectError: true,
		},
		{
			name:        "negative timeout",
			mutate:      func(c *Config) { c.Timeout = -time.Second },
			expectError: true,
		},
		{
			name:        "zero max connections",
			mutate:      func(c *Config) { c.MaxConnections = 0 },
			expectError: true,
		},
		{
			name:        "negative retries",
			mutate:      func(c *Config) { c.MaxRetries = -1 },
			expectError: true,
		},
		{
			name:        "zero concurrent tasks",
			mutate:      func(c *Config) { c.ConcurrentTasks = 0 },
			expectError: true,
		},
		{
			name: "min delay exceeds max delay",
			mutate: func(c *Config) {
				c.MinDelay = 2 * time.Second
				c.MaxDelay = time.Second
			},
			expectError: true,
		},
		{
			name:        "negative min delay",
			mutate:      func(c *Config) { c.MinDelay = -time.Second },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			f, err := New(cfg)

			if tt.expectError {
				if err == nil {
					t.Error("Expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if f == nil {
				t.Error("Fetcher is nil")
			}
		})
	}
}

func TestNew_CustomUserAgents(t *testing.T) {
	cfg := DefaultConfig()
	cfg.UserAgents = []string{"custom-agent/1.0"}

	f, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	agents := f.agents.Agents()
	if len(agents) != 1 || agents[0] != "custom-agent/1.0" {
		t.Errorf("Agent pool = %v, want [custom-agent/1.0]", agents)
	}
}
