package shade

import "github.com/plus3/termtris/tetromino"

// Tunables for the block facet pattern: a light source at the top left.
const (
	FacetHue    float32 = 7
	FacetShade  float32 = 0.75
	FacetShadow float32 = 0.6
)

// Quad holds the shades of the four twoxels of one block.
type Quad struct {
	TopLeft, TopRight, BottomLeft, BottomRight Color
}

// Facets lights a block of color base: the top-left twoxel is warmed by
// FacetHue, the off-diagonal pair is dimmed by FacetShade and the bottom-right
// is darkened by FacetShadow and cooled by FacetHue.
func Facets(base Color) Quad {
	side := ScaleLightness(base, FacetShade)
	return Quad{
		TopLeft:     ShiftHue(base, FacetHue),
		TopRight:    side,
		BottomLeft:  side,
		BottomRight: ShiftHue(ScaleLightness(base, FacetShadow), -FacetHue),
	}
}

// At returns the shade of the twoxel at offset (dx, dy) inside the block.
// Offsets other than 0 and 1 are folded onto the nearest edge.
func (q Quad) At(dx, dy int) Color {
	switch {
	case dx <= 0 && dy <= 0:
		return q.TopLeft
	case dy <= 0:
		return q.TopRight
	case dx <= 0:
		return q.BottomLeft
	default:
		return q.BottomRight
	}
}

var palette = [tetromino.NumKinds]Color{
	tetromino.I: {0, 240, 240, 255},
	tetromino.O: {240, 240, 0, 255},
	tetromino.T: Magenta,
	tetromino.J: {0, 80, 240, 255},
	tetromino.L: {240, 160, 0, 255},
	tetromino.S: {0, 220, 60, 255},
	tetromino.Z: {240, 20, 40, 255},
}

// KindColor is the default base color of a piece. Unknown kinds are white.
func KindColor(kind tetromino.Kind) Color {
	if !kind.Valid() {
		return White
	}
	return palette[kind]
}
