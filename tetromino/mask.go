package tetromino

import (
	"iter"
	"math/bits"
	"strings"
)

// Mask is a 4x4 occupancy grid packed row-major into 16 bits, most
// significant bit first.
type Mask uint16

// Side is the width and height of the frame a Mask describes.
const Side = 4

// Bit returns the mask with only (row, col) set. Coordinates outside the frame
// yield 0.
func Bit(row, col int) Mask {
	if row < 0 || row >= Side || col < 0 || col >= Side {
		return 0
	}
	return 1 << (15 - (row*Side + col))
}

// Has reports whether (row, col) is occupied.
func (m Mask) Has(row, col int) bool {
	b := Bit(row, col)
	return b != 0 && m&b != 0
}

// Count is the number of occupied cells.
func (m Mask) Count() int {
	return bits.OnesCount16(uint16(m))
}

// Cells yields (row, col) of every occupied cell in row-major order.
func (m Mask) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row := range Side {
			for col := range Side {
				if m.Has(row, col) && !yield(row, col) {
					return
				}
			}
		}
	}
}

// Bounds returns the smallest rectangle holding every occupied cell. ok is
// false for an empty mask.
func (m Mask) Bounds() (minRow, minCol, maxRow, maxCol int, ok bool) {
	minRow, minCol = Side, Side
	maxRow, maxCol = -1, -1
	for row, col := range m.Cells() {
		minRow, maxRow = min(minRow, row), max(maxRow, row)
		minCol, maxCol = min(minCol, col), max(maxCol, col)
	}
	if maxRow < 0 {
		return 0, 0, 0, 0, false
	}
	return minRow, minCol, maxRow, maxCol, true
}

// Glyph renders the mask as four rows of GlyphFilled / GlyphEmpty.
func (m Mask) Glyph() [Side]string {
	var rows [Side]string
	var sb strings.Builder
	for row := range Side {
		sb.Reset()
		for col := range Side {
			if m.Has(row, col) {
				sb.WriteByte(GlyphFilled)
			} else {
				sb.WriteByte(GlyphEmpty)
			}
		}
		rows[row] = sb.String()
	}
	return rows
}

// String joins the glyph rows with '/', e.g. "-X--/XXX-/----/----".
func (m Mask) String() string {
	rows := m.Glyph()
	return strings.Join(rows[:], "/")
}
