package animation

import (
	"sync"
	"time"
)

// Clock is the host's frame scheduler. RequestFrame runs fn once, on the
// next display refresh.
type Clock interface {
	Now() time.Time
	RequestFrame(fn func())
}

// DefaultFrameInterval approximates a 60 Hz display refresh.
const DefaultFrameInterval = time.Second / 60

// FrameClock schedules frames on wall-clock timers.
type FrameClock struct {
	interval time.Duration
}

func NewFrameClock(interval time.Duration) *FrameClock {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &FrameClock{interval: interval}
}

func (c *FrameClock) Now() time.Time { return time.Now() }

func (c *FrameClock) RequestFrame(fn func()) {
	time.AfterFunc(c.interval, fn)
}

// ManualClock only moves when Advance is called. Frames requested during an
// Advance run on the following one.
type ManualClock struct {
	mu      sync.Mutex
	now     time.Time
	pending []func()
}

func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

func (c *ManualClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *ManualClock) RequestFrame(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.pending = append(c.pending, fn)
}

// Advance moves the clock forward by d and runs the frames that were pending.
func (c *ManualClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	due := c.pending
	c.pending = nil
	c.mu.Unlock()

	for _, fn := range due {
		fn()
	}
}

// Pending returns the number of frames waiting for the next Advance.
func (c *ManualClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}
