package store

import (
	"sync"
	"time"
)

// DefaultThrottle is the quiet period before a deferred write runs.
const DefaultThrottle = 300 * time.Millisecond

type timer interface {
	Stop() bool
}

// afterFunc matches time.AfterFunc so tests can drive the clock.
type afterFunc func(d time.Duration, f func()) timer

func realAfterFunc(d time.Duration, f func()) timer {
	return time.AfterFunc(d, f)
}

// deferred owns at most one pending task. Scheduling again cancels the
// pending one and restarts the quiet period, so a burst of calls runs only
// the last task, once, after the burst ends.
type deferred struct {
	mu    sync.Mutex
	delay time.Duration
	after afterFunc
	timer timer
	task  func()
	// gen invalidates timers that fire after being superseded.
	gen uint64
}

func newDeferred(delay time.Duration, after afterFunc) *deferred {
	if after == nil {
		after = realAfterFunc
	}
	if delay < 0 {
		delay = 0
	}
	return &deferred{delay: delay, after: after}
}

// Schedule replaces any pending task with task.
func (d *deferred) Schedule(task func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopLocked()
	d.gen++
	gen := d.gen
	d.task = task
	d.timer = d.after(d.delay, func() { d.fire(gen) })
}

// Cancel drops the pending task and reports whether there was one.
func (d *deferred) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	pending := d.task != nil
	d.stopLocked()
	d.gen++
	return pending
}

// Flush runs the pending task now, if any.
func (d *deferred) Flush() {
	d.mu.Lock()
	task := d.task
	d.stopLocked()
	d.gen++
	d.mu.Unlock()
	if task != nil {
		task()
	}
}

// Pending reports whether a task is waiting to run.
func (d *deferred) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.task != nil
}

func (d *deferred) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.task == nil {
		d.mu.Unlock()
		return
	}
	task := d.task
	d.task = nil
	d.timer = nil
	d.mu.Unlock()
	task()
}

func (d *deferred) stopLocked() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.task = nil
}
