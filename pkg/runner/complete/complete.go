// Package complete provides the runner logic for marking tasks done.
package complete

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/printers"
)

// Complete toggles a task between open and done.
type Complete struct {
	ID      string
	Service *app.Service

	JSON bool
	Out  io.Writer
}

// Do executes the toggle for the configured task ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not complete, no board")
	}

	t := n.Service.ToggleDone(n.ID)
	if t == nil {
		return fmt.Errorf("%w: %s", app.ErrNotFound, n.ID)
	}

	if n.JSON {
		return printers.JSON(n.Out, t)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Board(t)
	return nil
}
