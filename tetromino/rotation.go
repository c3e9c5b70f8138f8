package tetromino

import "fmt"

// Rotation is one of the four cardinal orientations. Clockwise order is
// North, East, South, West.
type Rotation uint8

const (
	North Rotation = iota
	East
	South
	West
)

// NumRotations is the number of rotation states.
const NumRotations = 4

var rotationNames = [NumRotations]string{"North", "East", "South", "West"}

func (r Rotation) String() string {
	if r < NumRotations {
		return rotationNames[r]
	}
	return fmt.Sprintf("Rotation(%d)", uint8(r))
}

// CW is the clockwise successor.
func (r Rotation) CW() Rotation {
	return (r + 1) % NumRotations
}

// CCW is the counter-clockwise predecessor.
func (r Rotation) CCW() Rotation {
	return (r + NumRotations - 1) % NumRotations
}

// Turn rotates by quarter turns; positive is clockwise.
func (r Rotation) Turn(quarters int) Rotation {
	q := (int(r%NumRotations) + quarters) % NumRotations
	if q < 0 {
		q += NumRotations
	}
	return Rotation(q)
}

// RotateCW is the clockwise successor of r.
func RotateCW(r Rotation) Rotation { return r.CW() }

// RotateCCW is the counter-clockwise predecessor of r.
func RotateCCW(r Rotation) Rotation { return r.CCW() }
