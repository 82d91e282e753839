// Package edit provides the runner logic for changing task fields.
package edit

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/printers"
)

// Edit applies a patch to one task.
type Edit struct {
	Service *app.Service
	ID      string
	Patch   app.Patch

	JSON bool
	Out  io.Writer
}

// Do executes the update for the configured task ID.
func (n *Edit) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not edit, no board")
	}
	if n.Patch.Title == nil && n.Patch.Description == nil && n.Patch.Color == nil {
		return errors.New("nothing to change, set --title, --desc or --color")
	}
	if n.Patch.Title != nil && *n.Patch.Title == "" {
		return errors.New("title can not be empty")
	}

	t := n.Service.Update(n.ID, n.Patch)
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
