package store

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/board"
)

func TestSaveNowWritesImmediately(t *testing.T) {
	slot := NewMemorySlot(0)
	s := New(slot)
	st := board.Default()

	s.SaveNow(st)

	if slot.Sets() != 1 {
		t.Fatalf("expected 1 write, got %d", slot.Sets())
	}
	raw, ok, _ := slot.GetItem(StorageKey)
	if !ok || raw != `{"version":1,"tasks":[],"ui":{"filter":"all","nextZ":1}}` {
		t.Fatalf("unexpected document %q", raw)
	}
}

func TestSaveCollapsesBurstIntoOneWrite(t *testing.T) {
	clock := &fakeClock{}
	slot := NewMemorySlot(0)
	s := New(slot, withAfterFunc(clock.AfterFunc))
	st := board.Default()

	for i := 0; i < 3; i++ {
		s.Save(st)
	}
	if slot.Sets() != 0 {
		t.Fatalf("expected no write before the quiet period, got %d", slot.Sets())
	}
	if clock.Armed() != 1 {
		t.Fatalf("expected a single armed timer, got %d", clock.Armed())
	}
	for _, timer := range clock.timers {
		if timer.delay != DefaultThrottle {
			t.Fatalf("expected delay %v, got %v", DefaultThrottle, timer.delay)
		}
	}

	clock.Fire()
	if slot.Sets() != 1 {
		t.Fatalf("expected exactly 1 write, got %d", slot.Sets())
	}
	if s.Pending() {
		t.Fatal("expected nothing pending after the write")
	}
}

func TestSetPosBurstWritesLastPosition(t *testing.T) {
	clock := &fakeClock{}
	slot := NewMemorySlot(0)
	s := New(slot, withAfterFunc(clock.AfterFunc))
	svc := app.New(board.Default(), s)

	task := svc.Create(app.CreateInput{Title: "Drag me", X: 0, Y: 0})
	writes := slot.Sets()

	svc.SetPos(task.ID, 10, 10)
	svc.SetPos(task.ID, 20, 20)
	svc.SetPos(task.ID, 30, 40)
	clock.Fire()

	if got := slot.Sets() - writes; got != 1 {
		t.Fatalf("expected 1 write for the drag, got %d", got)
	}
	loaded := s.Load()
	if pos := loaded.Tasks[0].Pos; pos.X != 30 || pos.Y != 40 {
		t.Fatalf("expected last position 30,40, got %v", pos)
	}
}

func TestDeferredWriteEncodesAtFireTime(t *testing.T) {
	clock := &fakeClock{}
	slot := NewMemorySlot(0)
	s := New(slot, withAfterFunc(clock.AfterFunc))
	st := board.Default()

	s.Save(st)
	st.Mutate(func(st *board.State) { st.UI.Filter = board.FilterDone })
	clock.Fire()

	raw, _, _ := slot.GetItem(StorageKey)
	if !strings.Contains(raw, `"filter":"done"`) {
		t.Fatalf("expected the write to reflect the later mutation, got %s", raw)
	}
}

func TestSaveNowCancelsPendingWrite(t *testing.T) {
	clock := &fakeClock{}
	slot := NewMemorySlot(0)
	s := New(slot, withAfterFunc(clock.AfterFunc))
	st := board.Default()

	s.Save(st)
	s.SaveNow(st)
	if s.Pending() {
		t.Fatal("expected SaveNow to cancel the deferred write")
	}
	clock.Fire()
	if slot.Sets() != 1 {
		t.Fatalf("expected only the immediate write, got %d", slot.Sets())
	}
}

func TestCloseFlushesPendingWrite(t *testing.T) {
	clock := &fakeClock{}
	slot := NewMemorySlot(0)
	s := New(slot, withAfterFunc(clock.AfterFunc))

	s.Save(board.Default())
	if err := s.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	if slot.Sets() != 1 {
		t.Fatalf("expected close to flush 1 write, got %d", slot.Sets())
	}
	clock.Fire()
	if slot.Sets() != 1 {
		t.Fatalf("expected the stale timer to do nothing, got %d writes", slot.Sets())
	}
}

func TestSaveWithRealTimer(t *testing.T) {
	slot := NewMemorySlot(0)
	s := New(slot, WithThrottle(10*time.Millisecond))
	st := board.Default()

	s.Save(st)
	s.Save(st)

	deadline := time.Now().Add(2 * time.Second)
	for slot.Sets() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	time.Sleep(30 * time.Millisecond)
	if slot.Sets() != 1 {
		t.Fatalf("expected 1 write, got %d", slot.Sets())
	}
}

type failingSlot struct {
	MemorySlot
	err error
}

func (f *failingSlot) SetItem(string, string) error {
	return f.err
}

func TestWriteFailureWarnsOnce(t *testing.T) {
	slot := &failingSlot{err: ErrQuotaExceeded}
	var mu sync.Mutex
	var warnings []error
	s := New(slot, WithWarning(func(err error) {
		mu.Lock()
		defer mu.Unlock()
		warnings = append(warnings, err)
	}))

	svc := app.New(board.Default(), s)
	task := svc.Create(app.CreateInput{Title: "Too big"})
	if task == nil {
		t.Fatal("expected create to succeed in memory")
	}
	svc.ToggleDone(task.ID)
	s.SaveNow(board.Default())

	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if !errors.Is(warnings[0], ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", warnings[0])
	}
	if got := svc.Get(task.ID); got == nil || !got.Done {
		t.Fatalf("expected in-memory state to keep the toggle, got %+v", got)
	}
}

func TestMemorySlotQuota(t *testing.T) {
	slot := NewMemorySlot(8)
	if err := slot.SetItem("k", "small"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := slot.SetItem("k", "far too large"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected quota error, got %v", err)
	}
	if v, _, _ := slot.GetItem("k"); v != "small" {
		t.Fatalf("expected previous value kept, got %q", v)
	}
}

func TestLoadAcceptsNullTimestamps(t *testing.T) {
	doc := `{"version":1,"tasks":[{"id":"a","title":"t","description":"","createdAt":1,"updatedAt":null,"done":false,"doneAt":null,"color":2,"pos":{"x":1,"y":2},"z":1}],"ui":{"filter":"all","nextZ":2}}`
	st := loadString(t, doc)
	if len(st.Tasks) != 1 {
		t.Fatalf("expected task kept, got %d", len(st.Tasks))
	}
	if st.Tasks[0].UpdatedAt != nil || st.Tasks[0].DoneAt != nil {
		t.Fatalf("expected absent timestamps, got %+v", st.Tasks[0])
	}
}

func TestWithKey(t *testing.T) {
	slot := NewMemorySlot(0)
	s := New(slot, WithKey("other"))
	s.SaveNow(board.Default())
	if _, ok, _ := slot.GetItem("other"); !ok {
		t.Fatal("expected document under the configured key")
	}
	if _, ok, _ := slot.GetItem(StorageKey); ok {
		t.Fatal("expected nothing under the default key")
	}
}
