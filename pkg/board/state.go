// Package board defines the task board document: its tasks, the UI
// preferences saved alongside them, and the JSON shape they persist as.
package board

import (
	"encoding/json"
	"sync"
)

// CurrentVersion is the schema version written by this package.
const CurrentVersion = 1

// UI holds the view preferences saved with the board.
type UI struct {
	Filter Filter `json:"filter"`
	// NextZ is the next stacking order to hand out. It always exceeds the Z
	// of every task.
	NextZ int64 `json:"nextZ"`

	extra map[string]json.RawMessage
}

var uiMembers = []string{"filter", "nextZ"}

type uiJSON UI

func (u *UI) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal((*uiJSON)(u))
	if err != nil {
		return nil, err
	}
	return mergeExtra(data, u.extra)
}

func (u *UI) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*uiJSON)(u)); err != nil {
		return err
	}
	extra, err := splitExtra(data, uiMembers)
	if err != nil {
		return err
	}
	u.extra = extra
	return nil
}

// NewUI assembles preferences from validated parts, keeping extra members.
func NewUI(filter Filter, nextZ int64, extra map[string]json.RawMessage) UI {
	return UI{Filter: filter, NextZ: nextZ, extra: extra}
}

// DefaultUI returns the preferences of a fresh board.
func DefaultUI() UI {
	return UI{Filter: FilterAll, NextZ: 1}
}

// State is the whole persisted document. It is shared between the goroutine
// that mutates it and the deferred writer that encodes it, so access goes
// through Mutate, View and Encode.
type State struct {
	Version int     `json:"version"`
	Tasks   []*Task `json:"tasks"`
	UI      UI      `json:"ui"`

	extra map[string]json.RawMessage
	mu    sync.RWMutex
}

var stateMembers = []string{"version", "tasks", "ui"}

// MarshalJSON does not lock; use Encode for a state that may be in use.
func (s *State) MarshalJSON() ([]byte, error) {
	tasks := s.Tasks
	if tasks == nil {
		tasks = []*Task{}
	}
	data, err := json.Marshal(&struct {
		Version int     `json:"version"`
		Tasks   []*Task `json:"tasks"`
		UI      *UI     `json:"ui"`
	}{s.Version, tasks, &s.UI})
	if err != nil {
		return nil, err
	}
	return mergeExtra(data, s.extra)
}

func (s *State) UnmarshalJSON(data []byte) error {
	var doc struct {
		Version int     `json:"version"`
		Tasks   []*Task `json:"tasks"`
		UI      UI      `json:"ui"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	extra, err := splitExtra(data, stateMembers)
	if err != nil {
		return err
	}
	s.Version, s.Tasks, s.UI, s.extra = doc.Version, doc.Tasks, doc.UI, extra
	return nil
}

// Default returns an empty board at the current version.
func Default() *State {
	return &State{
		Version: CurrentVersion,
		Tasks:   []*Task{},
		UI:      DefaultUI(),
	}
}

// New assembles a state from already validated parts. extra carries
// unrecognised top-level members to write back out.
func New(version int, tasks []*Task, ui UI, extra map[string]json.RawMessage) *State {
	if tasks == nil {
		tasks = []*Task{}
	}
	return &State{Version: version, Tasks: tasks, UI: ui, extra: extra}
}

// Mutate runs fn with exclusive access to s.
func (s *State) Mutate(fn func(s *State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s)
}

// View runs fn with shared access to s. fn must not modify s.
func (s *State) View(fn func(s *State)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s)
}

// Encode serializes s under a shared lock.
func (s *State) Encode() ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return json.Marshal(s)
}

// Find returns the task with id, or nil. The caller must hold the lock.
func (s *State) Find(id string) *Task {
	if i := s.index(id); i >= 0 {
		return s.Tasks[i]
	}
	return nil
}

// Remove deletes the task with id and reports whether it existed. The caller
// must hold the lock.
func (s *State) Remove(id string) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	s.Tasks = append(s.Tasks[:i], s.Tasks[i+1:]...)
	return true
}

// AllocZ hands out the next stacking order. The caller must hold the lock.
func (s *State) AllocZ() int64 {
	z := s.UI.NextZ
	s.UI.NextZ++
	return z
}

// MaxZ returns the highest Z among tasks, or 0 for none.
func MaxZ(tasks []*Task) int64 {
	var hi int64
	for _, t := range tasks {
		if t.Z > hi {
			hi = t.Z
		}
	}
	return hi
}

func (s *State) index(id string) int {
	for i, t := range s.Tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
