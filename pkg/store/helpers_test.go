package store

import (
	"sync"
	"testing"
	"time"

	"tableflip.dev/taskboard/pkg/board"
)

// fakeClock hands out timers that only fire when told to.
type fakeClock struct {
	mu     sync.Mutex
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	delay   time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, delay: d, f: f}
	c.timers = append(c.timers, t)
	return t
}

// Fire runs every timer that is still armed.
func (c *fakeClock) Fire() {
	c.mu.Lock()
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

// Armed returns how many timers are waiting.
func (c *fakeClock) Armed() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, t := range c.timers {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}

func assertDefault(t *testing.T, st *board.State) {
	t.Helper()
	if st.Version != board.CurrentVersion {
		t.Fatalf("expected version %d, got %d", board.CurrentVersion, st.Version)
	}
	if len(st.Tasks) != 0 {
		t.Fatalf("expected no tasks, got %d", len(st.Tasks))
	}
	if st.UI.Filter != board.FilterAll {
		t.Fatalf("expected filter all, got %q", st.UI.Filter)
	}
	if st.UI.NextZ != 1 {
		t.Fatalf("expected nextZ 1, got %d", st.UI.NextZ)
	}
}

func loadString(t *testing.T, doc string) *board.State {
	t.Helper()
	slot := NewMemorySlot(0)
	if err := slot.SetItem(StorageKey, doc); err != nil {
		t.Fatalf("seed slot: %v", err)
	}
	return New(slot).Load()
}

func taskIDs(tasks []*board.Task) []string {
	ids := make([]string, len(tasks))
	for i, task := range tasks {
		ids[i] = task.ID
	}
	return ids
}
