// Package store persists the board document to a single key of a durable
// key-value slot. Loading never fails: unusable documents fall back to an
// empty board and malformed tasks are dropped. Writes come in two flavours,
// a throttled one for high frequency changes such as dragging and an
// immediate one for discrete edits.
package store

import (
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"tableflip.dev/taskboard/pkg/board"
	"tableflip.dev/taskboard/pkg/logging"
)

// StorageKey is the default key holding the document.
const StorageKey = "taskboard_state"

// Store reads and writes the board document.
type Store struct {
	slot Slot
	key  string
	log  *log.Logger

	throttle time.Duration
	after    afterFunc
	pending  *deferred

	// wmu orders writes so an older encode never lands after a newer one.
	wmu    sync.Mutex
	notify func(error)
	warned sync.Once
}

// Option configures a Store.
type Option func(*Store)

// WithKey sets the key the document lives under.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// WithThrottle sets the quiet period of Save.
func WithThrottle(d time.Duration) Option {
	return func(s *Store) {
		s.throttle = d
	}
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// WithWarning sets the user-facing notice shown the first time a write
// fails. It runs at most once per Store.
func WithWarning(fn func(err error)) Option {
	return func(s *Store) {
		s.notify = fn
	}
}

func withAfterFunc(after afterFunc) Option {
	return func(s *Store) {
		s.after = after
	}
}

// New returns a Store over slot.
func New(slot Slot, opts ...Option) *Store {
	s := &Store{
		slot:     slot,
		key:      StorageKey,
		log:      logging.Discard(),
		throttle: DefaultThrottle,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.pending = newDeferred(s.throttle, s.after)
	return s
}

// Key returns the key the document lives under.
func (s *Store) Key() string {
	return s.key
}

// Slot returns the underlying slot.
func (s *Store) Slot() Slot {
	return s.slot
}

// Load reads the document. It always returns a usable state.
func (s *Store) Load() *board.State {
	raw, ok, err := s.slot.GetItem(s.key)
	if err != nil {
		s.log.Error("could not read board state", "key", s.key, "err", err)
		return board.Default()
	}
	if !ok || raw == "" {
		return board.Default()
	}

	state, report, err := decode([]byte(raw))
	switch {
	case errors.Is(err, errCorrupt), errors.Is(err, errNotObject):
		s.log.Warn("corrupt board state, starting over", "key", s.key, "err", err)
		return board.Default()
	case err != nil:
		s.log.Warn("unusable board state, starting over", "key", s.key, "err", err)
		return board.Default()
	}
	if report.forward {
		s.log.Warn("board state was written by a newer version", "key", s.key, "version", state.Version)
	}
	s.log.Debug("loaded board state", "key", s.key, "tasks", report.loaded, "dropped", report.dropped)
	return state
}

// Save writes state after the throttle period, unless another Save or a
// SaveNow comes first. The state is encoded when the write runs, so the
// latest mutations are what lands.
func (s *Store) Save(state *board.State) {
	s.pending.Schedule(func() { s.write(state) })
}

// SaveNow cancels any deferred write and writes state synchronously.
func (s *Store) SaveNow(state *board.State) {
	s.pending.Cancel()
	s.write(state)
}

// Pending reports whether a deferred write is waiting.
func (s *Store) Pending() bool {
	return s.pending.Pending()
}

// Flush runs a deferred write now, if one is waiting.
func (s *Store) Flush() {
	s.pending.Flush()
}

// Close flushes any deferred write and releases the slot.
func (s *Store) Close() error {
	s.Flush()
	if c, ok := s.slot.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// write never reports failure to the caller; the in-memory state stays
// authoritative.
func (s *Store) write(state *board.State) {
	s.wmu.Lock()
	defer s.wmu.Unlock()

	data, err := state.Encode()
	if err == nil {
		err = s.slot.SetItem(s.key, string(data))
	}
	if err != nil {
		s.log.Error("could not save board state", "key", s.key, "err", err)
		s.warned.Do(func() {
			if s.notify != nil {
				s.notify(err)
			}
		})
	}
}
