package store

import "testing"

func TestDeferredRunsLastTaskOnce(t *testing.T) {
	clock := &fakeClock{}
	d := newDeferred(DefaultThrottle, clock.AfterFunc)

	var ran []int
	for i := 1; i <= 3; i++ {
		i := i
		d.Schedule(func() { ran = append(ran, i) })
	}
	if !d.Pending() {
		t.Fatal("expected a pending task")
	}
	if clock.Armed() != 1 {
		t.Fatalf("expected 1 armed timer, got %d", clock.Armed())
	}
	clock.Fire()

	if len(ran) != 1 || ran[0] != 3 {
		t.Fatalf("expected only the last task to run, got %v", ran)
	}
	if d.Pending() {
		t.Fatal("expected nothing pending after firing")
	}
}

func TestDeferredCancel(t *testing.T) {
	clock := &fakeClock{}
	d := newDeferred(DefaultThrottle, clock.AfterFunc)

	if d.Cancel() {
		t.Fatal("expected Cancel on an idle scheduler to report false")
	}
	ran := false
	d.Schedule(func() { ran = true })
	if !d.Cancel() {
		t.Fatal("expected Cancel to report the pending task")
	}
	clock.Fire()
	if ran {
		t.Fatal("cancelled task ran")
	}
}

func TestDeferredFlush(t *testing.T) {
	clock := &fakeClock{}
	d := newDeferred(DefaultThrottle, clock.AfterFunc)

	runs := 0
	d.Schedule(func() { runs++ })
	d.Flush()
	if runs != 1 {
		t.Fatalf("expected flush to run the task, got %d runs", runs)
	}
	d.Flush()
	clock.Fire()
	if runs != 1 {
		t.Fatalf("expected no further runs, got %d", runs)
	}
}

func TestDeferredIgnoresStaleTimer(t *testing.T) {
	clock := &fakeClock{}
	d := newDeferred(DefaultThrottle, clock.AfterFunc)

	runs := 0
	d.Schedule(func() { runs++ })
	stale := clock.timers[0]
	d.Schedule(func() { runs += 10 })

	// A timer that lost the race with Stop still calls its func.
	stale.f()
	if runs != 0 {
		t.Fatalf("stale timer ran a task, runs=%d", runs)
	}
	clock.Fire()
	if runs != 10 {
		t.Fatalf("expected the current task to run, runs=%d", runs)
	}
}

func TestDeferredNegativeDelay(t *testing.T) {
	clock := &fakeClock{}
	d := newDeferred(-1, clock.AfterFunc)
	d.Schedule(func() {})
	if clock.timers[0].delay != 0 {
		t.Fatalf("expected delay clamped to 0, got %v", clock.timers[0].delay)
	}
}
