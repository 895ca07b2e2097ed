package tetris

import (
	"sync"
	"time"
)

// Scheduler fires a gravity callback at a fixed interval. It owns at most
// one armed timer; every arm bumps a generation number and a firing from an
// older generation is dropped, so no callback runs after Stop returns
// unless it had already begun.
type Scheduler struct {
	mu       sync.Mutex
	after    AfterFunc
	onTick   func()
	timer    Timer
	interval time.Duration
	gen      uint64
	running  bool
}

// NewScheduler returns a stopped scheduler. A nil after uses WallClock.
func NewScheduler(after AfterFunc, onTick func()) *Scheduler {
	if after == nil {
		after = WallClock
	}
	return &Scheduler{after: after, onTick: onTick}
}

// Start (re)arms the scheduler with a fresh full interval.
func (s *Scheduler) Start(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.running = true
	s.interval = interval
	s.armLocked()
}

// Reschedule switches a running scheduler to a new interval, restarting the
// countdown. On a stopped scheduler it only records the interval.
func (s *Scheduler) Reschedule(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.interval = interval
	if !s.running {
		return
	}
	s.cancelLocked()
	s.armLocked()
}

// Stop cancels the pending timer.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cancelLocked()
	s.running = false
}

// Running reports whether a timer is armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Interval returns the current interval.
func (s *Scheduler) Interval() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.interval
}

func (s *Scheduler) cancelLocked() {
	s.gen++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}

func (s *Scheduler) armLocked() {
	s.gen++
	gen := s.gen
	s.timer = s.after(s.interval, func() { s.fire(gen) })
}

func (s *Scheduler) fire(gen uint64) {
	s.mu.Lock()
	if !s.running || gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.timer = nil
	s.mu.Unlock()

	// onTick may call Stop or Reschedule; either bumps gen.
	s.onTick()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running && gen == s.gen {
		s.armLocked()
	}
}
