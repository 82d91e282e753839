// Package remove provides the runner logic for deleting tasks.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/printers"
)

// Remove deletes a task and prints what is left.
type Remove struct {
	ID      string
	Service *app.Service

	JSON bool
	Out  io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no board")
	}

	if !n.Service.Delete(n.ID) {
		return fmt.Errorf("%w: %s", app.ErrNotFound, n.ID)
	}

	if n.JSON {
		return printers.JSON(n.Out, map[string]interface{}{"id": n.ID, "deleted": true})
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	tasks := n.Service.Filtered()
	pp.TitleWithCount("Board", len(tasks))
	pp.Board(tasks...)
	return nil
}
