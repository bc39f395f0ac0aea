package state

import (
	"sync/atomic"
	"time"
)

// Clock stamps activity log entries. Tick numbers entries in the order they
// happen; Now supplies the wall-clock time.
type Clock struct {
	counter uint64
	now     func() time.Time
}

// NewClock returns a clock reading the given time source. A nil source
// means time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Tick increments the clock and returns the new value.
func (c *Clock) Tick() uint64 {
	return atomic.AddUint64(&c.counter, 1)
}

// Update moves the counter forward to at least seq, as when entries are
// restored from a saved document.
func (c *Clock) Update(seq uint64) {
	for {
		cur := atomic.LoadUint64(&c.counter)
		if seq <= cur || atomic.CompareAndSwapUint64(&c.counter, cur, seq) {
			return
		}
	}
}

// Now returns the current time.
func (c *Clock) Now() time.Time {
	return c.now()
}
