package tetromino_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/plus3/termtris/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/txtar"
)

var rotations = [tetromino.NumRotations]tetromino.Rotation{
	tetromino.North, tetromino.East, tetromino.South, tetromino.West,
}

func TestOccupancyHasFourCells(t *testing.T) {
	for _, kind := range tetromino.Kinds {
		for _, rot := range rotations {
			t.Run(fmt.Sprintf("%v/%v", kind, rot), func(t *testing.T) {
				assert.Equal(t, 4, tetromino.Occupancy(kind, rot).Count())
			})
		}
	}
}

func TestOccupancyOSymmetric(t *testing.T) {
	north := tetromino.Occupancy(tetromino.O, tetromino.North)
	for _, rot := range rotations {
		assert.Equal(t, north, tetromino.Occupancy(tetromino.O, rot), rot.String())
	}
}

func TestOccupancyTNorth(t *testing.T) {
	mask := tetromino.Occupancy(tetromino.T, tetromino.North)

	var cells [][2]int
	for row, col := range mask.Cells() {
		cells = append(cells, [2]int{row, col})
	}
	assert.Equal(t, [][2]int{{0, 1}, {1, 0}, {1, 1}, {1, 2}}, cells)
	assert.Equal(t, [4]string{"-X--", "XXX-", "----", "----"}, mask.Glyph())
	assert.Equal(t, tetromino.Mask(0b0100_1110_0000_0000), mask)
}

func TestOccupancyOutOfRange(t *testing.T) {
	assert.Zero(t, tetromino.Occupancy(tetromino.Kind(7), tetromino.North))
	assert.Zero(t, tetromino.Occupancy(tetromino.T, tetromino.Rotation(4)))
	assert.Equal(t, [4]tetromino.Mask{}, tetromino.Rotations(tetromino.Kind(99)))
}

// Every non-O layout must be the clockwise quarter turn of the previous one
// inside its SRS box: 4x4 for I, the top-left 3x3 otherwise.
func TestTableIsGeometric(t *testing.T) {
	for _, kind := range tetromino.Kinds {
		if kind == tetromino.O {
			continue
		}
		box := 3
		if kind == tetromino.I {
			box = 4
		}
		masks := tetromino.Rotations(kind)
		for i, from := range masks {
			var turned tetromino.Mask
			for row, col := range from.Cells() {
				turned |= tetromino.Bit(col, box-1-row)
			}
			assert.Equal(t, masks[(i+1)%4], turned, "%v %v -> %v", kind, rotations[i], rotations[(i+1)%4])
		}
	}
}

func TestGoldenShapes(t *testing.T) {
	archive, err := txtar.ParseFile("testdata/shapes.txtar")
	require.NoError(t, err)
	require.Len(t, archive.Files, tetromino.NumKinds*tetromino.NumRotations)

	seen := map[string]bool{}
	for _, file := range archive.Files {
		t.Run(file.Name, func(t *testing.T) {
			kindName, rotName, ok := strings.Cut(file.Name, "/")
			require.True(t, ok)

			kind, err := tetromino.ParseKind(kindName)
			require.NoError(t, err)

			var rot tetromino.Rotation
			for _, r := range rotations {
				if r.String() == rotName {
					rot = r
				}
			}
			require.Equal(t, rotName, rot.String())

			want, err := tetromino.ParseGlyphString(string(file.Data))
			require.NoError(t, err)

			got := tetromino.Occupancy(kind, rot)
			assert.Equal(t, want, got)

			glyph := got.Glyph()
			assert.Equal(t, string(file.Data), strings.Join(glyph[:], "\n")+"\n")
			seen[file.Name] = true
		})
	}
	assert.Len(t, seen, 28)
}

func TestRotationCycle(t *testing.T) {
	for _, r := range rotations {
		assert.Equal(t, r, r.CW().CW().CW().CW())
		assert.Equal(t, r, r.CCW().CCW().CCW().CCW())
		assert.Equal(t, r, tetromino.RotateCCW(tetromino.RotateCW(r)))
		assert.Equal(t, r, tetromino.RotateCW(tetromino.RotateCCW(r)))
	}

	assert.Equal(t, tetromino.East, tetromino.North.CW())
	assert.Equal(t, tetromino.West, tetromino.North.CCW())
	assert.Equal(t, tetromino.North, tetromino.West.CW())
}

func TestRotationTurn(t *testing.T) {
	tests := []struct {
		from     tetromino.Rotation
		quarters int
		want     tetromino.Rotation
	}{
		{tetromino.North, 0, tetromino.North},
		{tetromino.North, 1, tetromino.East},
		{tetromino.North, -1, tetromino.West},
		{tetromino.South, 6, tetromino.North},
		{tetromino.East, -9, tetromino.North},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.from.Turn(tt.quarters), "%v%+d", tt.from, tt.quarters)
	}
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "T", tetromino.T.String())
	assert.Equal(t, "Kind(9)", tetromino.Kind(9).String())
	assert.Equal(t, "West", tetromino.West.String())
	assert.Equal(t, "Rotation(7)", tetromino.Rotation(7).String())
	assert.Equal(t, "-X--/XXX-/----/----", tetromino.Occupancy(tetromino.T, tetromino.North).String())
}

func TestParseKind(t *testing.T) {
	for _, kind := range tetromino.Kinds {
		got, err := tetromino.ParseKind(strings.ToLower(kind.String()))
		require.NoError(t, err)
		assert.Equal(t, kind, got)
	}
	_, err := tetromino.ParseKind("Q")
	assert.Error(t, err)
	assert.Equal(t, tetromino.I, tetromino.Z.Next())
	assert.True(t, tetromino.Z.Valid())
	assert.False(t, tetromino.Kind(7).Valid())
}

func TestParseGlyph(t *testing.T) {
	m, err := tetromino.ParseGlyph([4]string{"o...", "oo..", ".o..", "...."})
	require.NoError(t, err)
	assert.Equal(t, tetromino.Occupancy(tetromino.S, tetromino.West), m)

	_, err = tetromino.ParseGlyph([4]string{"XXX", "----", "----", "----"})
	assert.ErrorContains(t, err, "row 0")

	_, err = tetromino.ParseGlyph([4]string{"----", "--?-", "----", "----"})
	assert.ErrorContains(t, err, "col 2")

	_, err = tetromino.ParseGlyphString("----/----")
	assert.Error(t, err)

	assert.Panics(t, func() { tetromino.MustGlyph("----") })
	assert.Panics(t, func() { tetromino.MustGlyph("----", "----", "---*", "----") })
}

func TestMaskBounds(t *testing.T) {
	minRow, minCol, maxRow, maxCol, ok := tetromino.Occupancy(tetromino.I, tetromino.East).Bounds()
	require.True(t, ok)
	assert.Equal(t, []int{0, 2, 3, 2}, []int{minRow, minCol, maxRow, maxCol})

	_, _, _, _, ok = tetromino.Mask(0).Bounds()
	assert.False(t, ok)

	assert.Zero(t, tetromino.Bit(4, 0))
	assert.Zero(t, tetromino.Bit(0, -1))
	assert.Equal(t, tetromino.Mask(0x8000), tetromino.Bit(0, 0))
	assert.Equal(t, tetromino.Mask(1), tetromino.Bit(3, 3))
	assert.False(t, tetromino.Mask(0xFFFF).Has(-1, 0))
}
