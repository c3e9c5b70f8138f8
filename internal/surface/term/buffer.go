package term

import (
	"math"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/shade"
)

const (
	upperHalf = '▀'
	lowerHalf = '▄'
	blank     = ' '

	brailleBase = 0x2800
)

// brailleDots maps an octad's position inside a cell (column, row) to its
// braille dot bit.
var brailleDots = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Buffer accumulates one frame of sub-cell plots over a cols x rows cell
// grid. Each cell holds two twoxels (top and bottom) or up to eight octads
// drawn as braille. Twoxels take the cell over when both kinds land in it.
type Buffer struct {
	cols, rows int
	twoxels    []shade.Color
	dots       []uint8
	dotColors  []shade.Color
}

// NewBuffer returns a cleared buffer of cols x rows cells.
func NewBuffer(cols, rows int) *Buffer {
	b := &Buffer{}
	b.Resize(cols, rows)
	return b
}

// Resize changes the grid and clears it.
func (b *Buffer) Resize(cols, rows int) {
	cols, rows = max(cols, 0), max(rows, 0)
	b.cols, b.rows = cols, rows
	b.twoxels = make([]shade.Color, cols*rows*2)
	b.dots = make([]uint8, cols*rows)
	b.dotColors = make([]shade.Color, cols*rows)
}

// Size returns the buffer size in cells.
func (b *Buffer) Size() (cols, rows int) {
	return b.cols, b.rows
}

// Clear empties every cell.
func (b *Buffer) Clear() {
	clear(b.twoxels)
	clear(b.dots)
	clear(b.dotColors)
}

// PlotTwoxel fills the twoxel containing p. Plots off the grid and fully
// transparent colors are dropped.
func (b *Buffer) PlotTwoxel(p coords.Term, c shade.Color) {
	x, y := floor(p.X), floor(p.Y*2)
	if c.A == 0 || x < 0 || y < 0 || x >= b.cols || y >= b.rows*2 {
		return
	}
	b.twoxels[y*b.cols+x] = c
}

// PlotOctad sets the braille dot containing p. The last color plotted in a
// cell colors all of its dots.
func (b *Buffer) PlotOctad(p coords.Term, c shade.Color) {
	ox, oy := floor(p.X*2), floor(p.Y*4)
	x, y := ox>>1, oy>>2
	if c.A == 0 || ox < 0 || oy < 0 || x >= b.cols || y >= b.rows {
		return
	}
	i := y*b.cols + x
	b.dots[i] |= brailleDots[ox&1][oy&3]
	b.dotColors[i] = c
}

// Cell resolves what to print at (x, y). ok is false for an empty cell.
func (b *Buffer) Cell(x, y int) (r rune, fg, bg shade.Color, ok bool) {
	if x < 0 || y < 0 || x >= b.cols || y >= b.rows {
		return blank, fg, bg, false
	}
	top := b.twoxels[2*y*b.cols+x]
	bottom := b.twoxels[(2*y+1)*b.cols+x]
	switch {
	case top.A != 0:
		return upperHalf, top, bottom, true
	case bottom.A != 0:
		return lowerHalf, bottom, top, true
	case b.dots[y*b.cols+x] != 0:
		return brailleBase + rune(b.dots[y*b.cols+x]), b.dotColors[y*b.cols+x], bg, true
	}
	return blank, fg, bg, false
}

func floor(v float32) int {
	f := math.Floor(float64(v))
	if math.IsNaN(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return -1
	}
	return int(f)
}
