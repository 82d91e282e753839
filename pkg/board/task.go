package board

import (
	"encoding/json"
)

// Position is a board-relative card coordinate. It is not constrained; keeping
// a card on screen is up to the view.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Task is one card on the board.
type Task struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	CreatedAt   int64    `json:"createdAt"`
	UpdatedAt   *int64   `json:"updatedAt,omitempty"`
	Done        bool     `json:"done"`
	DoneAt      *int64   `json:"doneAt,omitempty"`
	Color       int      `json:"color"`
	Pos         Position `json:"pos"`
	Z           int64    `json:"z"`

	// extra holds members written by other versions of the document.
	extra map[string]json.RawMessage
}

var taskMembers = []string{
	"id", "title", "description", "createdAt", "updatedAt",
	"done", "doneAt", "color", "pos", "z",
}

type taskJSON Task

func (t *Task) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal((*taskJSON)(t))
	if err != nil {
		return nil, err
	}
	return mergeExtra(data, t.extra)
}

func (t *Task) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, (*taskJSON)(t)); err != nil {
		return err
	}
	extra, err := splitExtra(data, taskMembers)
	if err != nil {
		return err
	}
	t.extra = extra
	return nil
}

// Clone returns a deep copy of t.
func (t *Task) Clone() *Task {
	if t == nil {
		return nil
	}
	cp := *t
	if t.UpdatedAt != nil {
		v := *t.UpdatedAt
		cp.UpdatedAt = &v
	}
	if t.DoneAt != nil {
		v := *t.DoneAt
		cp.DoneAt = &v
	}
	cp.extra = cloneExtra(t.extra)
	return &cp
}

// Millis returns a pointer to ms, for the optional timestamp fields.
func Millis(ms int64) *int64 {
	return &ms
}
