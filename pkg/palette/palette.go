// Package palette holds the eight card colours a task can take.
package palette

import (
	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
)

// Size is the number of colours; valid indexes are 0 to Size-1.
const Size = 8

// Colour is one card colour.
type Colour struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Hex   string `json:"hex"`
	// Attr is the nearest terminal background.
	Attr color.Attribute `json:"-"`
}

var colours = [Size]Colour{
	{0, "paper", "#fdf6e3", color.BgHiWhite},
	{1, "butter", "#fde68a", color.BgHiYellow},
	{2, "peach", "#fdba74", color.BgYellow},
	{3, "rose", "#fca5a5", color.BgHiRed},
	{4, "lilac", "#c4b5fd", color.BgHiMagenta},
	{5, "sky", "#93c5fd", color.BgHiBlue},
	{6, "mint", "#86efac", color.BgHiGreen},
	{7, "slate", "#334155", color.BgBlack},
}

// All returns the palette in index order.
func All() []Colour {
	out := make([]Colour, Size)
	copy(out, colours[:])
	return out
}

// ClampIndex forces i into the palette range.
func ClampIndex(i int) int {
	switch {
	case i < 0:
		return 0
	case i >= Size:
		return Size - 1
	}
	return i
}

// Get returns the colour at i, clamped.
func Get(i int) Colour {
	return colours[ClampIndex(i)]
}

// Luminance is the relative luminance of c in the range 0 (black) to 1
// (white).
func (c Colour) Luminance() float64 {
	col, err := colorful.Hex(c.Hex)
	if err != nil {
		return 0
	}
	r, g, b := col.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Dark reports whether text on c should be light.
func (c Colour) Dark() bool {
	return c.Luminance() < 0.4
}

// Foreground is the terminal text colour readable on c.
func (c Colour) Foreground() color.Attribute {
	if c.Dark() {
		return color.FgHiWhite
	}
	return color.FgBlack
}

// Style returns a printer for text on a card of colour c.
func (c Colour) Style(attrs ...color.Attribute) *color.Color {
	return color.New(append([]color.Attribute{c.Attr, c.Foreground()}, attrs...)...)
}
