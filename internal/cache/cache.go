// Package cache holds the in-memory mirrors of the remote store: one cache
// per entity kind per signed-in user. A cache is replaced wholesale on fetch
// and patched incrementally on add/update/delete, with the remote store
// always confirming a mutation before the mirror changes.
//
// Concurrency contract: the mutex protects slice memory, nothing more.
// Operations are not queued or serialized against each other; if two
// mutations race, the last committed write wins. Callers (the HTTP layer)
// issue one mutation per user action, so this is a cooperative convention
// rather than a guarantee the cache enforces.
package cache

import (
	"fmt"
	"sync"
)

type Op string

const (
	OpFetch  Op = "fetch"
	OpAdd    Op = "add"
	OpUpdate Op = "update"
	OpDelete Op = "delete"
)

type Entity string

const (
	EntityApplication Entity = "application"
	EntityInterview   Entity = "interview"
	EntityReferral    Entity = "referral"
)

// Event describes one committed cache mutation. ID is empty for fetches.
type Event struct {
	Entity Entity
	Op     Op
	ID     string
}

// state carries the observable loading/error flags and the subscriber list
// shared by all three cache kinds.
type state struct {
	mu      sync.RWMutex
	loading bool
	lastErr string
	subs    []func(Event)
}

// begin marks the cache loading and clears any prior error message.
func (s *state) begin() {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()
}

// end is deferred by every operation so the loading flag drops on all paths.
func (s *state) end() {
	s.mu.Lock()
	s.loading = false
	s.mu.Unlock()
}

// fail records a human-readable message and returns the wrapped error so the
// triggering caller can still react to it.
func (s *state) fail(msg string, err error) error {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
	return fmt.Errorf("%s: %w", msg, err)
}

// Loading reports whether an operation is currently in flight.
func (s *state) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// LastError returns the human-readable message of the most recent failure,
// or "" if the last operation succeeded or the error was reset.
func (s *state) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// ResetError clears the error state without touching the cached records.
func (s *state) ResetError() {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()
}

// Subscribe registers fn to run after every committed mutation.
func (s *state) Subscribe(fn func(Event)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// publish runs the subscribers outside the lock; a subscriber may call back
// into a cache.
func (s *state) publish(ev Event) {
	s.mu.RLock()
	subs := make([]func(Event), len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}
