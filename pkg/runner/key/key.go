// Package key provides CLI helpers to display the colour legend.
package key

import (
	"context"
	"io"

	"tableflip.dev/taskboard/pkg/palette"
	"tableflip.dev/taskboard/pkg/printers"
)

// Key prints the card colours with their index, name and a sample.
type Key struct {
	JSON bool
	Out  io.Writer
}

// Do renders the colour key.
func (k *Key) Do(ctx context.Context) error {
	if k.JSON {
		return printers.JSON(k.Out, palette.All())
	}
	pp := printers.PrettyPrint{Out: k.Out}
	pp.NewLine()
	pp.Palette()
	return nil
}
