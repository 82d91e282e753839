package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"tableflip.dev/taskboard/pkg/board"
)

func TestWatchEmitsDocumentChanges(t *testing.T) {
	base := t.TempDir()
	s := New(NewDiskSlot(base))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	// Allow watcher goroutine to subscribe before writing.
	time.Sleep(50 * time.Millisecond)

	s.SaveNow(board.Default())

	select {
	case evt := <-ch:
		if evt.Key != StorageKey {
			t.Fatalf("expected key %q, got %q", StorageKey, evt.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	s := New(NewDiskSlot(t.TempDir()))
	ctx, cancel := context.WithCancel(context.Background())

	ch, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}
	cancel()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-ch:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("channel not closed after cancel")
		}
	}
}

func TestWatchUnsupportedSlot(t *testing.T) {
	s := New(NewMemorySlot(0))
	if _, err := s.Watch(context.Background()); !errors.Is(err, ErrWatchUnsupported) {
		t.Fatalf("expected ErrWatchUnsupported, got %v", err)
	}
}
