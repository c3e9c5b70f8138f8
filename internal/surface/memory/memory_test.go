package memory_test

import (
	"testing"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/draw"
	"github.com/plus3/termtris/internal/input"
	"github.com/plus3/termtris/internal/surface/memory"
	"github.com/plus3/termtris/shade"
	"github.com/plus3/termtris/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ draw.Surface = (*memory.Surface)(nil)

func TestRecordsPlots(t *testing.T) {
	s := memory.New()
	s.PlotTwoxel(coords.Term{X: 1, Y: 0.5}, shade.Magenta)
	s.PlotOctad(coords.Term{X: 0.5, Y: 0.25}, shade.White)

	require.Len(t, s.Plots(), 2)
	assert.Equal(t, memory.Plot{At: coords.Term{X: 1, Y: 0.5}, Color: shade.Magenta}, s.Plots()[0])
	assert.True(t, s.Plots()[1].Octad)

	twoxels, octads := s.Count()
	assert.Equal(t, 1, twoxels)
	assert.Equal(t, 1, octads)

	require.NoError(t, s.End())
	s.Begin()
	assert.Empty(t, s.Plots())
	assert.Equal(t, 1, s.Frames())
}

func TestASCIIPiece(t *testing.T) {
	s := memory.New()
	draw.Piece(s, tetromino.T, tetromino.North, coords.Block{}, shade.Magenta)

	want := "" +
		"  ##  \n" +
		"  ##  \n" +
		"######\n" +
		"######"
	assert.Equal(t, want, s.ASCII())
}

func TestASCIIFrame(t *testing.T) {
	s := memory.New()
	draw.Frame(s, coords.Block{X: 1, Y: 1}, 1, 1, shade.White)

	// A twoxel holds 2x2 octads, so the one-octad outline around a 2x2
	// twoxel block lands in the ring of twoxels around it.
	want := "" +
		"++++\n" +
		"+  +\n" +
		"+  +\n" +
		"++++"
	assert.Equal(t, want, s.ASCII())

	s.Begin()
	assert.Equal(t, "", s.ASCII())
}

func TestFeedPoll(t *testing.T) {
	s := memory.New()
	assert.Empty(t, s.Poll())

	s.Feed(input.Press(input.KeyLeft), input.Release(input.KeyLeft))
	s.Feed(input.Press(input.KeyQ))
	assert.Equal(t, []input.Event{
		input.Press(input.KeyLeft),
		input.Release(input.KeyLeft),
		input.Press(input.KeyQ),
	}, s.Poll())
	assert.Empty(t, s.Poll())
}
