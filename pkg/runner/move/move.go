// Package move provides the runner logic for repositioning and restacking
// cards.
package move

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/board"
	"tableflip.dev/taskboard/pkg/layout"
	"tableflip.dev/taskboard/pkg/printers"
)

// Move drops a card at a new position, as the end of a drag would.
type Move struct {
	ID      string
	X, Y    float64
	Front   bool
	Free    bool
	Board   layout.Board
	Service *app.Service

	JSON bool
	Out  io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not move, no board")
	}

	x, y := n.X, n.Y
	if !n.Free {
		x, y = n.Board.Clamp(x, y)
	}

	if n.Front && n.Service.BringToFront(n.ID) == nil {
		return fmt.Errorf("%w: %s", app.ErrNotFound, n.ID)
	}
	t := n.Service.SetPos(n.ID, x, y)
	if t == nil {
		return fmt.Errorf("%w: %s", app.ErrNotFound, n.ID)
	}
	return show(n.JSON, n.Out, t)
}

// Front stacks a card above the others.
type Front struct {
	ID      string
	Service *app.Service

	JSON bool
	Out  io.Writer
}

func (n *Front) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not bring to front, no board")
	}

	t := n.Service.BringToFront(n.ID)
	if t == nil {
		return fmt.Errorf("%w: %s", app.ErrNotFound, n.ID)
	}
	return show(n.JSON, n.Out, t)
}

func show(asJSON bool, out io.Writer, t *board.Task) error {
	if asJSON {
		return printers.JSON(out, t)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: out}
	pp.Board(t)
	return nil
}
