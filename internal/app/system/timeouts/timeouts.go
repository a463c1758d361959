// Package timeouts centralizes the context deadlines used around store
// calls in HTTP handlers.
//
//   - Ping: health checks and connectivity verification
//   - Short: single-document reads and writes (lookup, insert, delete)
//   - Medium: list queries and multi-step operations
package timeouts

import (
	"os"
	"sync"
	"time"
)

// Defaults used unless overridden by environment.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
)

var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
)

// Ping returns the timeout for health checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-document operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries and multi-step operations.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// ConfigureFromEnv reads overrides from TIMEOUT_PING, TIMEOUT_SHORT, and
// TIMEOUT_MEDIUM (Go duration strings, e.g. "500ms", "15s"). Unset or
// invalid values keep the defaults. Returns how many were applied.
func ConfigureFromEnv() int {
	mu.Lock()
	defer mu.Unlock()
	applied := 0

	for _, tc := range []struct {
		env string
		dst *time.Duration
	}{
		{"TIMEOUT_PING", &ping},
		{"TIMEOUT_SHORT", &short},
		{"TIMEOUT_MEDIUM", &medium},
	} {
		if v := os.Getenv(tc.env); v != "" {
			if d, err := time.ParseDuration(v); err == nil && d > 0 {
				*tc.dst = d
				applied++
			}
		}
	}
	return applied
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
}
