package ratelimit

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock lets tests drive the limiter's notion of time
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(maxCalls int, window time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1_700_000_000, 0)}
	l := New(maxCalls, window)
	l.now = clock.Now
	return l, clock
}

func TestAllowUpToCapacity(t *testing.T) {
	l, _ := newTestLimiter(5, 30*time.Second)

	for i := 0; i < 5; i++ {
		assert.True(t, l.Allow(), "call %d should pass", i+1)
	}
	assert.False(t, l.Allow(), "call 6 inside the window should be rejected")
}

func TestOldestAgesOut(t *testing.T) {
	l, clock := newTestLimiter(5, 30*time.Second)

	for i := 0; i < 5; i++ {
		require.True(t, l.Allow())
		clock.Advance(time.Second)
	}
	// 5 seconds elapsed since the first call; still inside the window.
	assert.False(t, l.Allow())

	// Push past the window measured from the oldest recorded call.
	clock.Advance(26 * time.Second)
	assert.True(t, l.Allow())
}

func TestFewerThanCapacityNeverRejected(t *testing.T) {
	l, clock := newTestLimiter(5, 30*time.Second)

	for i := 0; i < 4; i++ {
		assert.True(t, l.Allow())
	}
	clock.Advance(time.Hour)
	assert.True(t, l.Allow())
}

func TestSpacedCallsNeverRejected(t *testing.T) {
	l, clock := newTestLimiter(5, 30*time.Second)

	for i := 0; i < 50; i++ {
		assert.True(t, l.Allow(), "call %d spaced past the window should pass", i+1)
		clock.Advance(31 * time.Second)
	}
}

func TestDefaults(t *testing.T) {
	l := New(0, 0)
	assert.Equal(t, DefaultMaxCalls, l.MaxCalls())
	assert.Equal(t, DefaultWindow, l.Window())
}

func TestConcurrentCallsNeverExceedCapacity(t *testing.T) {
	l := New(5, time.Minute)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow() {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, allowed, "exactly capacity calls may pass inside one window")
}
