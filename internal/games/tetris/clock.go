package tetris

import (
	"sync"
	"time"
)

// Timer is a pending one-shot callback.
type Timer interface {
	// Stop cancels the callback. It returns false if the callback already
	// ran or was already stopped.
	Stop() bool
}

// AfterFunc arms f to run once after d and returns a handle to cancel it.
type AfterFunc func(d time.Duration, f func()) Timer

// WallClock arms timers on the runtime clock; callbacks run on their own
// goroutine.
func WallClock(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// FrameClock is a manual clock advanced by the host's frame loop. Due
// callbacks run synchronously inside Advance, on the caller's goroutine,
// in deadline order.
type FrameClock struct {
	mu     sync.Mutex
	now    time.Duration
	seq    uint64
	timers []*frameTimer
}

type frameTimer struct {
	clock *FrameClock
	at    time.Duration
	seq   uint64
	f     func()
	done  bool
}

// NewFrameClock returns a clock at time zero with no pending timers.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// AfterFunc implements the AfterFunc signature on this clock.
func (c *FrameClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	t := &frameTimer{clock: c, at: c.now + d, seq: c.seq, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Stop implements Timer.
func (t *frameTimer) Stop() bool {
	c := t.clock
	c.mu.Lock()
	defer c.mu.Unlock()
	if t.done {
		return false
	}
	t.done = true
	c.remove(t)
	return true
}

func (c *FrameClock) remove(t *frameTimer) {
	for i, p := range c.timers {
		if p == t {
			c.timers = append(c.timers[:i], c.timers[i+1:]...)
			return
		}
	}
}

// Advance moves the clock forward by dt, firing every timer that comes due.
// Timers armed by a callback fire in the same call if their deadline falls
// inside the window.
func (c *FrameClock) Advance(dt time.Duration) {
	c.mu.Lock()
	target := c.now + dt
	for {
		t := c.earliestDue(target)
		if t == nil {
			break
		}
		c.now = t.at
		t.done = true
		c.remove(t)

		c.mu.Unlock()
		t.f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

func (c *FrameClock) earliestDue(target time.Duration) *frameTimer {
	var best *frameTimer
	for _, t := range c.timers {
		if t.at > target {
			continue
		}
		if best == nil || t.at < best.at || (t.at == best.at && t.seq < best.seq) {
			best = t
		}
	}
	return best
}

// Now returns the elapsed clock time.
func (c *FrameClock) Now() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Pending returns the number of armed timers.
func (c *FrameClock) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.timers)
}
