// Package draw turns piece state into plot calls: occupancy bits become
// blocks, blocks become shaded twoxels, and the playfield outline becomes
// octads.
package draw

import (
	"iter"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/shade"
	"github.com/plus3/termtris/tetromino"
)

// Surface is anything that can plot sub-cells at terminal coordinates.
type Surface interface {
	PlotTwoxel(p coords.Term, c shade.Color)
	PlotOctad(p coords.Term, c shade.Color)
}

// blockTwoxels is the twoxel layout of a block, top-left first.
var blockTwoxels = [4]coords.Twoxel{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}}

// Block plots the four faceted twoxels of the block at b.
func Block(s Surface, b coords.Block, base shade.Color) {
	quad := shade.Facets(base)
	origin := b.Term()
	for _, d := range blockTwoxels {
		s.PlotTwoxel(origin.Add(d.Term()), quad.At(int(d.X), int(d.Y)))
	}
}

// PieceCells yields the board block of every occupied cell of kind in
// orientation rot, with the mask's (0, 0) placed at anchor.
func PieceCells(kind tetromino.Kind, rot tetromino.Rotation, anchor coords.Block) iter.Seq[coords.Block] {
	mask := tetromino.Occupancy(kind, rot)
	return func(yield func(coords.Block) bool) {
		for row, col := range mask.Cells() {
			if !yield(anchor.Add(coords.Block{X: int16(col), Y: int16(row)})) {
				return
			}
		}
	}
}

// Piece draws a whole piece. Cells pushed past the int16 block range pile
// up on the last block.
func Piece(s Surface, kind tetromino.Kind, rot tetromino.Rotation, anchor coords.Block, base shade.Color) {
	for b := range PieceCells(kind, rot, anchor) {
		Block(s, b, base)
	}
}

// Frame outlines a width x height block field whose top-left block is
// origin. The outline runs one octad outside the field on every side.
func Frame(s Surface, origin coords.Block, width, height int16, c shade.Color) {
	if width <= 0 || height <= 0 {
		return
	}
	corner := origin.Term().Add(coords.OctadToTerm(-1, -1))
	w, h := int(width)*4+1, int(height)*4+1
	for y := 0; y <= h; y++ {
		for x := 0; x <= w; x++ {
			if x != 0 && x != w && y != 0 && y != h {
				continue
			}
			s.PlotOctad(corner.Add(coords.Term{X: float32(x) / 2, Y: float32(y) / 4}), c)
		}
	}
}
