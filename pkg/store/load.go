package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"tableflip.dev/taskboard/pkg/board"
)

var (
	errCorrupt   = errors.New("store: board state is not valid JSON")
	errNotObject = errors.New("store: board state is not an object")
	errNoVersion = errors.New("store: board state has no version")
)

// migration upgrades a document in place from one version to the next.
// Members it does not touch must be left alone.
type migration func(doc map[string]json.RawMessage) error

// migrations maps a version to the step that upgrades it by one. Versions
// without a step need no change to their members.
var migrations = map[int]migration{}

// loadReport describes what decode did to a stored document.
type loadReport struct {
	loaded  int
	dropped int
	// forward is set when the document was written by a newer version.
	forward bool
}

// decode turns a stored document into a state. Individual tasks that do not
// have the expected shape are dropped, never repaired. An error means the
// document as a whole is unusable and the caller should start over.
func decode(data []byte) (*board.State, loadReport, error) {
	var report loadReport

	var parsed interface{}
	if err := json.Unmarshal(data, &parsed); err != nil || parsed == nil {
		return nil, report, errCorrupt
	}
	if _, ok := parsed.(map[string]interface{}); !ok {
		return nil, report, errNotObject
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, report, errNotObject
	}

	raw, ok := number(doc["version"])
	if !ok {
		return nil, report, errNoVersion
	}
	version := board.CurrentVersion
	if raw > float64(board.CurrentVersion) {
		report.forward = true
		version = int(math.Min(math.Floor(raw), math.MaxInt32))
	} else if err := migrate(doc, int(math.Max(math.Floor(raw), 0))); err != nil {
		return nil, report, err
	}

	tasks, dropped := decodeTasks(doc["tasks"])
	report.loaded, report.dropped = len(tasks), dropped

	ui := decodeUI(doc["ui"], board.MaxZ(tasks))

	for _, k := range []string{"version", "tasks", "ui"} {
		delete(doc, k)
	}
	var extra map[string]json.RawMessage
	if len(doc) > 0 {
		extra = doc
	}
	return board.New(version, tasks, ui, extra), report, nil
}

func migrate(doc map[string]json.RawMessage, from int) error {
	for v := from; v < board.CurrentVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			continue
		}
		if err := step(doc); err != nil {
			return fmt.Errorf("store: migrate from version %d: %w", v, err)
		}
	}
	return nil
}

func decodeTasks(raw json.RawMessage) ([]*board.Task, int) {
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return []*board.Task{}, 0
	}
	tasks := make([]*board.Task, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))
	dropped := 0
	for _, entry := range entries {
		t, ok := decodeTask(entry)
		if !ok {
			dropped++
			continue
		}
		if _, dup := seen[t.ID]; dup {
			dropped++
			continue
		}
		seen[t.ID] = struct{}{}
		tasks = append(tasks, t)
	}
	return tasks, dropped
}

// decodeTask keeps a task that has the stored shape and whose createdAt and z
// are also integral, as the typed decode into int64 requires.
func decodeTask(raw json.RawMessage) (*board.Task, bool) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil || !validTask(v) {
		return nil, false
	}
	t := &board.Task{}
	if err := json.Unmarshal(raw, t); err != nil {
		return nil, false
	}
	return t, true
}

// decodeUI reads the saved preferences, falling back member by member. nextZ
// is recomputed whenever it would not exceed maxZ.
func decodeUI(raw json.RawMessage, maxZ int64) board.UI {
	var members map[string]json.RawMessage
	if err := json.Unmarshal(raw, &members); err != nil || members == nil {
		ui := board.DefaultUI()
		if ui.NextZ <= maxZ {
			ui.NextZ = maxZ + 1
		}
		return ui
	}

	filter := board.FilterAll
	var name string
	if err := json.Unmarshal(members["filter"], &name); err == nil && board.Filter(name).Valid() {
		filter = board.Filter(name)
	}

	nextZ, ok := integer(members["nextZ"])
	if !ok || nextZ <= maxZ {
		nextZ = maxZ + 1
	}

	delete(members, "filter")
	delete(members, "nextZ")
	if len(members) == 0 {
		members = nil
	}
	return board.NewUI(filter, nextZ, members)
}

// number reads any JSON number.
func number(raw json.RawMessage) (float64, bool) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, false
	}
	f, ok := v.(float64)
	return f, ok
}

// integer reads a JSON number with no fractional part.
func integer(raw json.RawMessage) (int64, bool) {
	f, ok := number(raw)
	if !ok || f != math.Trunc(f) || math.Abs(f) > 1<<53 {
		return 0, false
	}
	return int64(f), true
}
