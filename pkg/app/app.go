package app

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"tableflip.dev/taskboard/pkg/board"
	"tableflip.dev/taskboard/pkg/palette"
)

// Writer persists the board. Save may defer and coalesce; SaveNow writes
// before returning. Failures are the writer's to report.
type Writer interface {
	Save(state *board.State)
	SaveNow(state *board.State)
}

// Service is the only mutator of a board. It wraps the state and its writer
// so UIs and CLIs can share logic. Tasks it returns are copies.
type Service struct {
	state *board.State
	w     Writer
	now   func() time.Time
	newID func() string
}

var (
	ErrInvalidFilter = errors.New("app: invalid filter")
	// ErrNotFound is for callers that turn a nil result into an error.
	ErrNotFound = errors.New("app: task not found")
)

// Option configures a Service.
type Option func(*Service)

// WithClock sets the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDs sets the generator for new task ids.
func WithIDs(newID func() string) Option {
	return func(s *Service) {
		if newID != nil {
			s.newID = newID
		}
	}
}

// New installs state as the board the Service operates on. A nil state
// starts an empty board; a nil writer keeps changes in memory only.
func New(state *board.State, w Writer, opts ...Option) *Service {
	if state == nil {
		state = board.Default()
	}
	if w == nil {
		w = discard{}
	}
	s := &Service{
		state: state,
		w:     w,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the board the Service writes. Read it through View or
// Encode only.
func (s *Service) State() *board.State {
	return s.state
}

// CreateInput describes a new task.
type CreateInput struct {
	Title       string
	Description string
	Color       int
	X, Y        float64
}

// Patch lists the fields Update may change. Nil fields are left alone.
type Patch struct {
	Title       *string
	Description *string
	Color       *int
}

// Create adds a task on top of every other card.
func (s *Service) Create(in CreateInput) *board.Task {
	now := s.millis()
	var out *board.Task
	s.state.Mutate(func(st *board.State) {
		t := &board.Task{
			ID:          s.uniqueID(st),
			Title:       strings.TrimSpace(in.Title),
			Description: strings.TrimSpace(in.Description),
			CreatedAt:   now,
			Color:       palette.ClampIndex(in.Color),
			Pos:         board.Position{X: in.X, Y: in.Y},
			Z:           st.AllocZ(),
		}
		st.Tasks = append(st.Tasks, t)
		out = t.Clone()
	})
	s.w.SaveNow(s.state)
	return out
}

// Update merges the set fields of p into the task and stamps UpdatedAt.
func (s *Service) Update(id string, p Patch) *board.Task {
	now := s.millis()
	out := s.mutate(id, func(_ *board.State, t *board.Task) {
		if p.Title != nil {
			t.Title = strings.TrimSpace(*p.Title)
		}
		if p.Description != nil {
			t.Description = strings.TrimSpace(*p.Description)
		}
		if p.Color != nil {
			t.Color = palette.ClampIndex(*p.Color)
		}
		t.UpdatedAt = board.Millis(now)
	})
	if out != nil {
		s.w.SaveNow(s.state)
	}
	return out
}

// Delete removes the task and reports whether it existed.
func (s *Service) Delete(id string) bool {
	var removed bool
	s.state.Mutate(func(st *board.State) {
		removed = st.Remove(id)
	})
	if removed {
		s.w.SaveNow(s.state)
	}
	return removed
}

// ToggleDone flips the task between open and done.
func (s *Service) ToggleDone(id string) *board.Task {
	now := s.millis()
	out := s.mutate(id, func(_ *board.State, t *board.Task) {
		t.Done = !t.Done
		if t.Done {
			t.DoneAt = board.Millis(now)
		} else {
			t.DoneAt = nil
		}
		t.UpdatedAt = board.Millis(now)
	})
	if out != nil {
		s.w.SaveNow(s.state)
	}
	return out
}

// SetColor changes the card colour.
func (s *Service) SetColor(id string, c int) *board.Task {
	out := s.mutate(id, func(_ *board.State, t *board.Task) {
		t.Color = palette.ClampIndex(c)
	})
	if out != nil {
		s.w.SaveNow(s.state)
	}
	return out
}

// SetPos moves the card. Moves are frequent, so the write is deferred.
func (s *Service) SetPos(id string, x, y float64) *board.Task {
	out := s.mutate(id, func(_ *board.State, t *board.Task) {
		t.Pos = board.Position{X: x, Y: y}
	})
	if out != nil {
		s.w.Save(s.state)
	}
	return out
}

// BringToFront stacks the card above every other one.
func (s *Service) BringToFront(id string) *board.Task {
	out := s.mutate(id, func(st *board.State, t *board.Task) {
		t.Z = st.AllocZ()
	})
	if out != nil {
		s.w.Save(s.state)
	}
	return out
}

// Get returns the task or nil.
func (s *Service) Get(id string) *board.Task {
	var out *board.Task
	s.state.View(func(st *board.State) {
		out = st.Find(id).Clone()
	})
	return out
}

// SetFilter changes which tasks Filtered returns.
func (s *Service) SetFilter(f board.Filter) error {
	if !f.Valid() {
		return ErrInvalidFilter
	}
	s.state.Mutate(func(st *board.State) {
		st.UI.Filter = f
	})
	s.w.SaveNow(s.state)
	return nil
}

// Filter returns the saved filter.
func (s *Service) Filter() board.Filter {
	var f board.Filter
	s.state.View(func(st *board.State) {
		f = st.UI.Filter
	})
	return f
}

// Filtered returns the tasks the saved filter lets through, in creation
// order.
func (s *Service) Filtered() []*board.Task {
	var out []*board.Task
	s.state.View(func(st *board.State) {
		out = make([]*board.Task, 0, len(st.Tasks))
		for _, t := range st.Tasks {
			if st.UI.Filter.Match(t) {
				out = append(out, t.Clone())
			}
		}
	})
	return out
}

// Tasks returns every task in creation order.
func (s *Service) Tasks() []*board.Task {
	var out []*board.Task
	s.state.View(func(st *board.State) {
		out = make([]*board.Task, len(st.Tasks))
		for i, t := range st.Tasks {
			out[i] = t.Clone()
		}
	})
	return out
}

// NextZ returns the stacking order the next Create or BringToFront assigns.
func (s *Service) NextZ() int64 {
	var z int64
	s.state.View(func(st *board.State) {
		z = st.UI.NextZ
	})
	return z
}

// mutate applies fn to task id under the lock and returns a copy of the
// result, or nil when there is no such task.
func (s *Service) mutate(id string, fn func(st *board.State, t *board.Task)) *board.Task {
	var out *board.Task
	s.state.Mutate(func(st *board.State) {
		t := st.Find(id)
		if t == nil {
			return
		}
		fn(st, t)
		out = t.Clone()
	})
	return out
}

func (s *Service) uniqueID(st *board.State) string {
	for {
		id := s.newID()
		if id != "" && st.Find(id) == nil {
			return id
		}
	}
}

func (s *Service) millis() int64 {
	return s.now().UnixMilli()
}

type discard struct{}

func (discard) Save(*board.State)    {}
func (discard) SaveNow(*board.State) {}
