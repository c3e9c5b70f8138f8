// Package coords converts between the grids the renderer works in and the
// floating terminal coordinates a surface consumes.
//
// Every conversion is a fixed per-axis scale:
//
//	space   unit in Term
//	Twoxel  1 column,  1/2 row
//	Octad   1/2 column, 1/4 row
//	Block   2 columns, 1 row
//
// A Block therefore covers 2x2 twoxels and 4x4 octads.
package coords

import "math"

// Term is a position in terminal cells. Fractions address the sub-cell
// units of a cell.
type Term struct {
	X, Y float32
}

// Add returns the component-wise sum.
func (p Term) Add(o Term) Term {
	return Term{p.X + o.X, p.Y + o.Y}
}

// Twoxel addresses a half-height sub-cell.
type Twoxel struct {
	X, Y int16
}

// Octad addresses one braille dot: 2 across and 4 down per cell.
type Octad struct {
	X, Y int16
}

// Block addresses one logical board cell.
type Block struct {
	X, Y int16
}

// Term returns the terminal position of the twoxel.
func (t Twoxel) Term() Term { return TwoxelToTerm(t.X, t.Y) }

// Term returns the terminal position of the octad.
func (o Octad) Term() Term { return OctadToTerm(o.X, o.Y) }

// Term returns the terminal position of the block's top-left corner.
func (b Block) Term() Term { return BlockToTerm(b.X, b.Y) }

// Add returns the component-wise sum, saturated at the int16 range.
func (t Twoxel) Add(o Twoxel) Twoxel {
	return Twoxel{sat16(int32(t.X) + int32(o.X)), sat16(int32(t.Y) + int32(o.Y))}
}

// Add returns the component-wise sum, saturated at the int16 range.
func (o Octad) Add(d Octad) Octad {
	return Octad{sat16(int32(o.X) + int32(d.X)), sat16(int32(o.Y) + int32(d.Y))}
}

// Add returns the component-wise sum, saturated at the int16 range.
func (b Block) Add(o Block) Block {
	return Block{sat16(int32(b.X) + int32(o.X)), sat16(int32(b.Y) + int32(o.Y))}
}

// Twoxel is the top-left twoxel of the block. Blocks beyond half the int16
// range saturate; use Term for exact positions there.
func (b Block) Twoxel() Twoxel {
	return Twoxel{sat16(int32(b.X) * 2), sat16(int32(b.Y) * 2)}
}

// Octad is the top-left octad of the block, saturated like Twoxel.
func (b Block) Octad() Octad {
	return Octad{sat16(int32(b.X) * 4), sat16(int32(b.Y) * 4)}
}

// TwoxelToTerm maps twoxel (x, y) to terminal cells.
func TwoxelToTerm(x, y int16) Term {
	return Term{float32(x), float32(y) * 0.5}
}

// OctadToTerm divides in floating point; octad rows are rarely multiples of 4.
func OctadToTerm(x, y int16) Term {
	return Term{float32(x) / 2, float32(y) / 4}
}

// BlockToTerm maps block (x, y) to terminal cells.
func BlockToTerm(x, y int16) Term {
	return Term{float32(x) * 2, float32(y)}
}

// TermToTwoxel returns the twoxel nearest to p.
func TermToTwoxel(p Term) Twoxel {
	return Twoxel{round16(p.X), round16(p.Y * 2)}
}

// TermToOctad returns the octad nearest to p.
func TermToOctad(p Term) Octad {
	return Octad{round16(p.X * 2), round16(p.Y * 4)}
}

// TermToBlock returns the block nearest to p.
func TermToBlock(p Term) Block {
	return Block{round16(p.X / 2), round16(p.Y)}
}

// round16 rounds half away from zero and saturates at the int16 range. NaN
// maps to 0.
func round16(v float32) int16 {
	f := math.Round(float64(v))
	switch {
	case math.IsNaN(f):
		return 0
	case f >= math.MaxInt16:
		return math.MaxInt16
	case f <= math.MinInt16:
		return math.MinInt16
	}
	return int16(f)
}

func sat16(v int32) int16 {
	switch {
	case v > math.MaxInt16:
		return math.MaxInt16
	case v < math.MinInt16:
		return math.MinInt16
	}
	return int16(v)
}
