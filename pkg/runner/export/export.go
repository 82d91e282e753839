// Package export provides the runner logic for dumping the board document.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/board"
)

const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

type Export struct {
	Format  string
	Service *app.Service
	Out     io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no board")
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}

	switch strings.ToLower(n.Format) {
	case "", FormatJSON:
		data, err := n.Service.State().Encode()
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')
		_, err = buf.WriteTo(out)
		return err
	case FormatTOML:
		return toml.NewEncoder(out).Encode(n.document())
	default:
		return fmt.Errorf("unknown format %q, want json or toml", n.Format)
	}
}

type document struct {
	Version int    `toml:"version"`
	UI      ui     `toml:"ui"`
	Tasks   []task `toml:"tasks"`
}

type ui struct {
	Filter string `toml:"filter"`
	NextZ  int64  `toml:"nextZ"`
}

type task struct {
	ID          string   `toml:"id"`
	Title       string   `toml:"title"`
	Description string   `toml:"description"`
	CreatedAt   int64    `toml:"createdAt"`
	UpdatedAt   *int64   `toml:"updatedAt,omitempty"`
	Done        bool     `toml:"done"`
	DoneAt      *int64   `toml:"doneAt,omitempty"`
	Color       int      `toml:"color"`
	Pos         position `toml:"pos"`
	Z           int64    `toml:"z"`
}

type position struct {
	X float64 `toml:"x"`
	Y float64 `toml:"y"`
}

func (n *Export) document() document {
	var doc document
	n.Service.State().View(func(st *board.State) {
		doc.Version = st.Version
		doc.UI = ui{Filter: st.UI.Filter.String(), NextZ: st.UI.NextZ}
	})
	for _, t := range n.Service.Tasks() {
		doc.Tasks = append(doc.Tasks, task{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
			UpdatedAt:   t.UpdatedAt,
			Done:        t.Done,
			DoneAt:      t.DoneAt,
			Color:       t.Color,
			Pos:         position{X: t.Pos.X, Y: t.Pos.Y},
			Z:           t.Z,
		})
	}
	return doc
}
