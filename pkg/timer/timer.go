package timer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Timer yields timestamps for high-frequency stamping, where calling
// time.Now on every message would be wasteful.
type Timer interface {
	Now() time.Time
	Stop()
}

// RealTimer reads the wall clock on every call. Useful where precision
// matters more than cost.
type RealTimer struct{}

func (RealTimer) Now() time.Time { return time.Now() }
func (RealTimer) Stop()          {}

// CachedTimer serves a timestamp refreshed in the background every step.
// Reads are a single atomic load; the value is stale by at most one step.
type CachedTimer struct {
	now    atomic.Value
	ticker *time.Ticker
	done   chan struct{}
	wg     sync.WaitGroup
}

// NewCachedTimer starts a cached timer with the given refresh step.
func NewCachedTimer(step time.Duration) *CachedTimer {
	t := &CachedTimer{
		ticker: time.NewTicker(step),
		done:   make(chan struct{}),
	}
	t.now.Store(time.Now())

	t.wg.Add(1)
	go t.run()

	return t
}

func (t *CachedTimer) run() {
	defer t.wg.Done()

	for {
		select {
		case <-t.ticker.C:
			// Re-read the clock instead of adding the step, so the
			// cached value cannot drift under ticker backlog.
			t.now.Store(time.Now())
		case <-t.done:
			t.ticker.Stop()
			return
		}
	}
}

// Now returns the cached timestamp.
func (t *CachedTimer) Now() time.Time {
	return t.now.Load().(time.Time)
}

// Stop terminates the refresh goroutine. Now keeps returning the last value.
func (t *CachedTimer) Stop() {
	close(t.done)
	t.wg.Wait()
}
