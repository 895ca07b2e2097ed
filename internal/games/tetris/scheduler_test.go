package tetris

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameClockFiresInDeadlineOrder(t *testing.T) {
	c := NewFrameClock()
	var order []string
	c.AfterFunc(30*time.Millisecond, func() { order = append(order, "b") })
	c.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	c.AfterFunc(30*time.Millisecond, func() { order = append(order, "c") })
	c.AfterFunc(50*time.Millisecond, func() { order = append(order, "late") })

	c.Advance(40 * time.Millisecond)

	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Equal(t, 40*time.Millisecond, c.Now())
	assert.Equal(t, 1, c.Pending())
}

func TestFrameClockStop(t *testing.T) {
	c := NewFrameClock()
	fired := false
	timer := c.AfterFunc(time.Millisecond, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports nothing to cancel")
	c.Advance(time.Second)
	assert.False(t, fired)

	done := c.AfterFunc(time.Millisecond, func() {})
	c.Advance(time.Millisecond)
	assert.False(t, done.Stop(), "stop after firing reports false")
}

func TestFrameClockRearmFromCallback(t *testing.T) {
	c := NewFrameClock()
	var fires []time.Duration
	var arm func()
	arm = func() {
		c.AfterFunc(100*time.Millisecond, func() {
			fires = append(fires, c.Now())
			arm()
		})
	}
	arm()

	c.Advance(350 * time.Millisecond)

	assert.Equal(t, []time.Duration{100 * time.Millisecond, 200 * time.Millisecond, 300 * time.Millisecond}, fires)
}

func TestSchedulerTicksAtInterval(t *testing.T) {
	c := NewFrameClock()
	ticks := 0
	s := NewScheduler(c.AfterFunc, func() { ticks++ })

	s.Start(100 * time.Millisecond)
	c.Advance(99 * time.Millisecond)
	assert.Equal(t, 0, ticks)
	c.Advance(time.Millisecond)
	assert.Equal(t, 1, ticks)
	c.Advance(250 * time.Millisecond)
	assert.Equal(t, 3, ticks)
	assert.Equal(t, 1, c.Pending(), "exactly one timer is ever armed")
}

func TestSchedulerStopCancels(t *testing.T) {
	c := NewFrameClock()
	ticks := 0
	s := NewScheduler(c.AfterFunc, func() { ticks++ })

	s.Start(100 * time.Millisecond)
	s.Stop()

	assert.False(t, s.Running())
	assert.Equal(t, 0, c.Pending())
	c.Advance(time.Second)
	assert.Equal(t, 0, ticks)

	s.Stop() // stopping twice is harmless
}

func TestSchedulerRescheduleKeepsSingleTimer(t *testing.T) {
	c := NewFrameClock()
	ticks := 0
	s := NewScheduler(c.AfterFunc, func() { ticks++ })

	s.Start(500 * time.Millisecond)
	c.Advance(400 * time.Millisecond)
	s.Reschedule(200 * time.Millisecond)
	s.Reschedule(200 * time.Millisecond)
	assert.Equal(t, 1, c.Pending())

	// The countdown restarts from the reschedule.
	c.Advance(150 * time.Millisecond)
	assert.Equal(t, 0, ticks)
	c.Advance(50 * time.Millisecond)
	assert.Equal(t, 1, ticks)
	assert.Equal(t, 200*time.Millisecond, s.Interval())
}

func TestSchedulerRescheduleWhileStopped(t *testing.T) {
	c := NewFrameClock()
	s := NewScheduler(c.AfterFunc, func() {})

	s.Reschedule(300 * time.Millisecond)

	assert.False(t, s.Running())
	assert.Equal(t, 0, c.Pending())
	assert.Equal(t, 300*time.Millisecond, s.Interval())
}

func TestSchedulerStopFromCallback(t *testing.T) {
	c := NewFrameClock()
	ticks := 0
	var s *Scheduler
	s = NewScheduler(c.AfterFunc, func() {
		ticks++
		s.Stop()
	})

	s.Start(100 * time.Millisecond)
	c.Advance(time.Second)

	assert.Equal(t, 1, ticks)
	assert.False(t, s.Running())
	assert.Equal(t, 0, c.Pending())
}

func TestSchedulerRescheduleFromCallback(t *testing.T) {
	c := NewFrameClock()
	var at []time.Duration
	var s *Scheduler
	s = NewScheduler(c.AfterFunc, func() {
		at = append(at, c.Now())
		s.Reschedule(50 * time.Millisecond)
	})

	s.Start(100 * time.Millisecond)
	c.Advance(200 * time.Millisecond)

	assert.Equal(t, []time.Duration{100 * time.Millisecond, 150 * time.Millisecond, 200 * time.Millisecond}, at)
	assert.Equal(t, 1, c.Pending())
}

// stubTimer never cancels, simulating a timer whose callback is already
// on its way when Stop is called.
type stubTimer struct{}

func (stubTimer) Stop() bool { return false }

func TestSchedulerDropsStaleFire(t *testing.T) {
	var callbacks []func()
	after := func(_ time.Duration, f func()) Timer {
		callbacks = append(callbacks, f)
		return stubTimer{}
	}
	ticks := 0
	s := NewScheduler(after, func() { ticks++ })

	s.Start(100 * time.Millisecond)
	s.Reschedule(50 * time.Millisecond)
	require.Len(t, callbacks, 2)

	callbacks[0]() // from the first arm
	assert.Equal(t, 0, ticks, "a fire from a replaced timer must be ignored")

	s.Stop()
	callbacks[1]()
	assert.Equal(t, 0, ticks, "a fire after Stop must be ignored")
}

func TestSchedulerWallClock(t *testing.T) {
	var ticks atomic.Int32
	s := NewScheduler(nil, func() { ticks.Add(1) })

	s.Start(5 * time.Millisecond)
	assert.Eventually(t, func() bool { return ticks.Load() >= 2 }, time.Second, time.Millisecond)

	s.Stop()
	time.Sleep(20 * time.Millisecond)
	settled := ticks.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, settled, ticks.Load(), "no ticks after Stop")
}
