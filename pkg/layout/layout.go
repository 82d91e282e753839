// Package layout keeps cards placed on a board of a given size.
package layout

import (
	"math"
	"math/rand"
)

const (
	// CardWidth and CardHeight are the nominal size of a card.
	CardWidth  = 260
	CardHeight = 200
	// Margin is how much of a card stays on the board at the edges.
	Margin = 40
	// Inset is the closest a new card is placed to the top left corner.
	Inset = 20
	// Jitter is the spread of the random offset given to new cards.
	Jitter = 100
)

// Board is the visible area cards are placed on.
type Board struct {
	Width, Height float64
}

// Clamp keeps at least Margin of the card inside the board on every side.
func (b Board) Clamp(x, y float64) (float64, float64) {
	return clamp(x, -CardWidth+Margin, b.Width-Margin),
		clamp(y, -CardHeight+Margin, b.Height-Margin)
}

// Place picks a spot for a new card near the centre of the board, offset by
// up to half of Jitter in each direction.
func (b Board) Place(rnd *rand.Rand) (float64, float64) {
	var dx, dy float64
	if rnd != nil {
		dx = (rnd.Float64() - 0.5) * Jitter
		dy = (rnd.Float64() - 0.5) * Jitter
	}
	x := math.Max(Inset, b.Width/2-CardWidth/2+dx)
	y := math.Max(Inset, b.Height/2-CardHeight/2+dy)
	return x, y
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
