package content

import (
	"sync"
	"time"
)

// DefaultRotateInterval is the storefront slideshow cadence.
const DefaultRotateInterval = 5 * time.Second

// Rotator advances the hero slide index on a fixed interval while the
// section is in the viewing state. Manual navigation resets the pending
// tick; editing suspends the schedule entirely.
type Rotator struct {
	mu        sync.Mutex
	count     int
	current   int
	interval  time.Duration
	timer     *time.Timer
	started   bool
	suspended bool
	stopped   bool
	onAdvance func(int)
}

func NewRotator(count int, interval time.Duration) *Rotator {
	if interval <= 0 {
		interval = DefaultRotateInterval
	}
	return &Rotator{count: count, interval: interval}
}

// OnAdvance registers a callback invoked with the new index after every
// timer-driven advance. Set it before Start.
func (r *Rotator) OnAdvance(fn func(int)) {
	r.mu.Lock()
	r.onAdvance = fn
	r.mu.Unlock()
}

// Start arms the schedule. A non-positive slide count leaves the rotator
// idle.
func (r *Rotator) Start() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.stopped || r.timer != nil {
		return
	}
	r.started = true
	if r.count <= 0 {
		return
	}
	r.timer = time.AfterFunc(r.interval, r.tick)
}

func (r *Rotator) tick() {
	r.mu.Lock()
	if r.stopped || r.suspended || r.count <= 0 {
		r.mu.Unlock()
		return
	}
	r.current = (r.current + 1) % r.count
	idx := r.current
	fn := r.onAdvance
	r.timer.Reset(r.interval)
	r.mu.Unlock()
	if fn != nil {
		fn(idx)
	}
}

func (r *Rotator) Current() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Next advances manually and resets the pending tick.
func (r *Rotator) Next() int {
	return r.navigate(func() {
		r.current = (r.current + 1) % r.count
	})
}

// Prev steps back manually and resets the pending tick.
func (r *Rotator) Prev() int {
	return r.navigate(func() {
		r.current = (r.current - 1 + r.count) % r.count
	})
}

// Select jumps to index i, clamped into range, and resets the pending tick.
func (r *Rotator) Select(i int) int {
	return r.navigate(func() {
		if i >= 0 && i < r.count {
			r.current = i
		}
	})
}

func (r *Rotator) navigate(move func()) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.count <= 0 {
		return r.current
	}
	move()
	if r.timer != nil && !r.suspended && !r.stopped {
		r.timer.Reset(r.interval)
	}
	return r.current
}

// Suspend pauses the schedule while the section is being edited.
func (r *Rotator) Suspend() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suspended = true
	if r.timer != nil {
		r.timer.Stop()
	}
}

// Resume re-arms the schedule with a possibly changed slide count. A
// rotator that was never started stays idle.
func (r *Rotator) Resume(count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.count = count
	if count <= 0 {
		r.current = 0
		return
	}
	if r.current >= count {
		r.current = 0
	}
	r.suspended = false
	if r.stopped || !r.started {
		return
	}
	if r.timer == nil {
		r.timer = time.AfterFunc(r.interval, r.tick)
		return
	}
	r.timer.Reset(r.interval)
}

// Stop cancels the schedule for good; part of component teardown.
func (r *Rotator) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.stopped = true
	if r.timer != nil {
		r.timer.Stop()
	}
}
