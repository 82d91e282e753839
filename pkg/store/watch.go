package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// ErrWatchUnsupported is returned by Watch for slots that cannot be watched.
var ErrWatchUnsupported = errors.New("store: slot does not support watching")

// Event is emitted by Watch after the stored document changes.
type Event struct {
	Key string
}

const watchCoalesce = 100 * time.Millisecond

// Watch streams change events for the document until ctx is cancelled. A
// burst of writes produces a single event. The channel is closed once ctx is
// done or the watcher fails.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	disk, ok := s.slot.(*DiskSlot)
	if !ok {
		return nil, ErrWatchUnsupported
	}
	return disk.watch(ctx, s.key, s.log)
}

func (s *DiskSlot) watch(ctx context.Context, key string, logger *log.Logger) (<-chan Event, error) {
	if s.basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(s.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(s.basePath); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("store: watch %s: %w", s.basePath, err)
	}

	events := make(chan Event, 8)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				logger.Warn("watcher close", "err", err)
			}
		}()

		// The coalescing timer only pokes tick; events is written from this
		// goroutine alone so it can be closed safely.
		tick := make(chan struct{}, 1)
		poke := func() {
			select {
			case tick <- struct{}{}:
			default:
			}
		}
		coalesce := newDeferred(watchCoalesce, nil)
		defer coalesce.Cancel()

		for {
			select {
			case <-ctx.Done():
				return
			case <-tick:
				select {
				case events <- Event{Key: key}:
				default:
					// The consumer already has an event queued and will
					// reload the whole document anyway.
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("watcher error", "err", err)
				coalesce.Schedule(poke)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Base(evt.Name) != key {
					continue
				}
				if evt.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
					continue
				}
				coalesce.Schedule(poke)
			}
		}
	}()

	return events, nil
}
