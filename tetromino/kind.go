// Package tetromino describes the seven four-cell pieces as 16-bit occupancy
// masks, one per rotation state, and the rotation state machine itself.
//
// Masks are row-major over a 4x4 frame with the most significant bit at
// (row 0, col 0). The shape table is compiled from glyph grids when the
// package is initialised, so the source table can be checked by eye.
package tetromino

import (
	"fmt"
	"strings"
)

// Kind identifies one of the seven pieces.
type Kind uint8

const (
	I Kind = iota
	O
	T
	J
	L
	S
	Z
)

// NumKinds is the number of piece kinds.
const NumKinds = 7

// Kinds lists every piece kind in declaration order.
var Kinds = [NumKinds]Kind{I, O, T, J, L, S, Z}

var kindNames = [NumKinds]string{"I", "O", "T", "J", "L", "S", "Z"}

func (k Kind) String() string {
	if k < NumKinds {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Valid reports whether k names one of the seven pieces.
func (k Kind) Valid() bool {
	return k < NumKinds
}

// Next returns the following kind, wrapping from Z back to I.
func (k Kind) Next() Kind {
	return (k + 1) % NumKinds
}

// ParseKind accepts a single piece letter in either case.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if strings.ToUpper(s) == name {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown piece %q", s)
}
