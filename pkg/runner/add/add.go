// Package add provides the runner logic for creating tasks.
package add

import (
	"context"
	"errors"
	"io"
	"math/rand"
	"strings"

	"tableflip.dev/taskboard/pkg/app"
	"tableflip.dev/taskboard/pkg/layout"
	"tableflip.dev/taskboard/pkg/printers"
)

// Add creates a task and prints it.
type Add struct {
	Service     *app.Service
	Title       string
	Description string
	Color       int
	// Placed is set when X and Y were given; otherwise the card goes near
	// the board centre.
	Placed bool
	X, Y   float64
	Board  layout.Board
	Rand   *rand.Rand

	JSON bool
	Out  io.Writer
}

// Do executes the create operation.
func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no board")
	}
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("requires a title")
	}

	x, y := n.X, n.Y
	if !n.Placed {
		x, y = n.Board.Place(n.Rand)
	}

	t := n.Service.Create(app.CreateInput{
		Title:       n.Title,
		Description: n.Description,
		Color:       n.Color,
		X:           x,
		Y:           y,
	})

	if n.JSON {
		return printers.JSON(n.Out, t)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.Board(t)
	return nil
}
