// Package show provides the runner logic for printing one task.
package show

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/printers"
)

type Show struct {
	ID      string
	Service *app.Service

	JSON bool
	Out  io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no board")
	}

	t := n.Service.Get(n.ID)
	if t == nil {
		return fmt.Errorf("%w: %s", app.ErrNotFound, n.ID)
	}

	if n.JSON {
		return printers.JSON(n.Out, t)
	}
	pp := printers.PrettyPrint{Out: n.Out}
	pp.Task(t)
	return nil
}
