package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/draw"
	"github.com/plus3/termtris/internal/input"
	"github.com/plus3/termtris/shade"
	"github.com/plus3/termtris/tetromino"
)

var _ draw.Surface = (*Surface)(nil)

func TestNewRejectsEmptyWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.Cols = 0
	_, err := New(opts)
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.Scale = -1
	_, err = New(opts)
	assert.Error(t, err)
}

func TestGeometry(t *testing.T) {
	opts := DefaultOptions()
	opts.Cols, opts.Rows, opts.Scale = 10, 5, 10
	s, err := New(opts)
	require.NoError(t, err)

	w, h := s.Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 100, h)

	// Twoxels are square.
	x, y, tw, th := s.Rect(coords.TwoxelToTerm(3, 3), false)
	assert.Equal(t, []float32{30, 30, 10, 10}, []float32{x, y, tw, th})

	// Octad dots sit inside their half-scale square.
	x, y, ow, oh := s.Rect(coords.OctadToTerm(2, 2), true)
	assert.Equal(t, []float32{11, 11, 3, 3}, []float32{x, y, ow, oh})
}

func TestRecordsPlots(t *testing.T) {
	s, err := New(DefaultOptions())
	require.NoError(t, err)

	draw.Piece(s, tetromino.S, tetromino.East, coords.Block{}, shade.Magenta)
	draw.Frame(s, coords.Block{}, 4, 4, shade.White)
	require.Len(t, s.plots, 16+2*18+2*16)

	octads := 0
	for _, p := range s.plots {
		if p.octad {
			octads++
		}
	}
	assert.Equal(t, 2*18+2*16, octads)
}

func TestKeyTable(t *testing.T) {
	seen := map[input.Key]bool{}
	for _, k := range keys {
		assert.False(t, seen[k.key], "%v mapped twice", k.key)
		seen[k.key] = true
	}
	assert.Len(t, seen, 9)
	assert.False(t, seen[input.KeyUnknown])
}
