// Package flood limits how many links are opened per service within a sliding minute.
package flood

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	// windowDuration is the fixed time window for rate limiting (always 1 minute)
	windowDuration = 60 * time.Second
	// cleanupInterval is how often we clean up expired entries
	cleanupInterval = 10 * time.Minute
	// idleTimeout is how long before we remove idle scope entries
	idleTimeout = 10 * time.Minute
)

// Floodgate provides per-scope rate limiting with a sliding window.
// A limit of zero or less disables the gate.
type Floodgate struct {
	limitPerMinute int
	entries        map[string]*scopeEntry
	clock          clockwork.Clock
	mutex          sync.RWMutex
	stopCleanup    chan struct{}
	stopOnce       sync.Once
}

type scopeEntry struct {
	timestamps []time.Time
	lastSeen   time.Time
}

// New creates a Floodgate backed by the real clock.
func New(limitPerMinute int) *Floodgate {
	return NewWithClock(limitPerMinute, clockwork.NewRealClock())
}

// NewWithClock creates a Floodgate that reads time from clock.
func NewWithClock(limitPerMinute int, clock clockwork.Clock) *Floodgate {
	fg := &Floodgate{
		limitPerMinute: limitPerMinute,
		entries:        make(map[string]*scopeEntry),
		clock:          clock,
		stopCleanup:    make(chan struct{}),
	}

	go fg.cleanup()

	return fg
}

// Stop stops the background cleanup goroutine. It is safe to call more than once.
func (fg *Floodgate) Stop() {
	fg.stopOnce.Do(func() {
		close(fg.stopCleanup)
	})
}

// Allow reports whether another link may be opened for scope and counts it if so.
func (fg *Floodgate) Allow(scope string) bool {
	if fg.limitPerMinute <= 0 {
		return true
	}

	now := fg.clock.Now()

	fg.mutex.Lock()
	defer fg.mutex.Unlock()

	entry, exists := fg.entries[scope]
	if !exists {
		entry = &scopeEntry{
			timestamps: make([]time.Time, 0, fg.limitPerMinute+1),
		}
		fg.entries[scope] = entry
	}

	entry.lastSeen = now

	windowStart := now.Add(-windowDuration)
	validTimestamps := entry.timestamps[:0] // Reuse slice capacity
	for _, ts := range entry.timestamps {
		if ts.After(windowStart) {
			validTimestamps = append(validTimestamps, ts)
		}
	}
	entry.timestamps = validTimestamps

	if len(entry.timestamps) >= fg.limitPerMinute {
		return false
	}

	entry.timestamps = append(entry.timestamps, now)
	return true
}

func (fg *Floodgate) cleanup() {
	fg.performCleanup()

	ticker := fg.clock.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			fg.performCleanup()
		case <-fg.stopCleanup:
			return
		}
	}
}

// performCleanup removes entries that have been idle for too long
func (fg *Floodgate) performCleanup() {
	fg.mutex.Lock()
	defer fg.mutex.Unlock()

	cutoff := fg.clock.Now().Add(-idleTimeout)
	for scope, entry := range fg.entries {
		if entry.lastSeen.Before(cutoff) {
			delete(fg.entries, scope)
		}
	}
}

// GetStats returns statistics about the floodgate for monitoring/debugging
func (fg *Floodgate) GetStats() Stats {
	fg.mutex.RLock()
	defer fg.mutex.RUnlock()

	return Stats{
		ActiveScopes:   len(fg.entries),
		LimitPerMinute: fg.limitPerMinute,
		WindowSeconds:  int(windowDuration.Seconds()),
	}
}

// Stats contains floodgate statistics
type Stats struct {
	ActiveScopes   int `json:"active_scopes"`
	LimitPerMinute int `json:"limit_per_minute"`
	WindowSeconds  int `json:"window_seconds"`
}
