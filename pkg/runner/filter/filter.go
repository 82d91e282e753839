// Package filter provides the runner logic for changing the saved filter.
package filter

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/board"
	"tableflip.dev/taskboard/pkg/printers"
)

type Filter struct {
	Filter  string
	ShowID  bool
	Service *app.Service

	JSON bool
	Out  io.Writer
}

func (n *Filter) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not filter, no board")
	}

	f, err := board.ParseFilter(n.Filter)
	if err != nil {
		return err
	}
	if err := n.Service.SetFilter(f); err != nil {
		return err
	}

	tasks := n.Service.Filtered()
	if n.JSON {
		return printers.JSON(n.Out, map[string]interface{}{"filter": f, "tasks": tasks})
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	pp.TitleWithCount("Board ("+f.String()+")", len(tasks))
	pp.Board(tasks...)
	return nil
}
