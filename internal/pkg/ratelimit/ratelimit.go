// Package ratelimit implements a sliding-window-by-count limiter: a call
// is rejected once the configured number of calls has been recorded inside
// the trailing window anchored at the oldest recorded timestamp.
package ratelimit

import (
	"sync"
	"time"
)

const (
	// DefaultMaxCalls is the default window capacity
	DefaultMaxCalls = 5
	// DefaultWindow is the default window duration
	DefaultWindow = 30 * time.Second
)

// Limiter throttles an endpoint globally, independent of caller identity.
// The zero value is not usable; construct with New.
type Limiter struct {
	mu       sync.Mutex
	maxCalls int
	window   time.Duration
	calls    []time.Time // oldest first, len <= maxCalls
	now      func() time.Time
}

// New creates a limiter allowing up to maxCalls calls per window.
// Non-positive arguments fall back to the defaults.
func New(maxCalls int, window time.Duration) *Limiter {
	if maxCalls <= 0 {
		maxCalls = DefaultMaxCalls
	}
	if window <= 0 {
		window = DefaultWindow
	}
	return &Limiter{
		maxCalls: maxCalls,
		window:   window,
		calls:    make([]time.Time, 0, maxCalls),
		now:      time.Now,
	}
}

// Allow reports whether a call may proceed right now, recording its
// timestamp if so. The check-then-record sequence is atomic: two
// concurrent calls can never both pass when only one slot remains.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if len(l.calls) == l.maxCalls {
		if now.Sub(l.calls[0]) < l.window {
			return false
		}
		// Oldest entry aged out; evict it to make room.
		copy(l.calls, l.calls[1:])
		l.calls = l.calls[:l.maxCalls-1]
	}

	l.calls = append(l.calls, now)
	return true
}

// MaxCalls returns the configured window capacity
func (l *Limiter) MaxCalls() int {
	return l.maxCalls
}

// Window returns the configured window duration
func (l *Limiter) Window() time.Duration {
	return l.window
}
