package tetromino_test

import (
	"fmt"

	"github.com/plus3/termtris/tetromino"
)

func ExampleOccupancy() {
	rot := tetromino.North
	for range 4 {
		fmt.Printf("%-5v %v\n", rot, tetromino.Occupancy(tetromino.L, rot))
		rot = rot.CW()
	}
	// Output:
	// North --X-/XXX-/----/----
	// East  -X--/-X--/-XX-/----
	// South ----/XXX-/X---/----
	// West  XX--/-X--/-X--/----
}
