// Package color provides the runner logic for recolouring a card.
package color

import (
	"context"
	"errors"
	"fmt"
	"io"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/palette"
	"tableflip.dev/taskboard/pkg/printers"
)

type Color struct {
	ID      string
	Color   int
	Service *app.Service

	JSON bool
	Out  io.Writer
}

func (n *Color) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not set colour, no board")
	}
	if n.Color < 0 || n.Color >= palette.Size {
		return fmt.Errorf("colour must be between 0 and %d, got %d", palette.Size-1, n.Color)
	}

	t := n.Service.SetColor(n.ID, n.Color)
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
