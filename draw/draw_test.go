package draw_test

import (
	"math"
	"slices"
	"testing"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/draw"
	"github.com/plus3/termtris/shade"
	"github.com/plus3/termtris/tetromino"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plot struct {
	at    coords.Term
	color shade.Color
}

type recorder struct {
	twoxels []plot
	octads  []plot
}

func (r *recorder) PlotTwoxel(p coords.Term, c shade.Color) {
	r.twoxels = append(r.twoxels, plot{p, c})
}

func (r *recorder) PlotOctad(p coords.Term, c shade.Color) {
	r.octads = append(r.octads, plot{p, c})
}

func TestBlock(t *testing.T) {
	var rec recorder
	draw.Block(&rec, coords.Block{X: 4, Y: 4}, shade.Magenta)

	q := shade.Facets(shade.Magenta)
	assert.Equal(t, []plot{
		{coords.Term{X: 8, Y: 4}, q.TopLeft},
		{coords.Term{X: 9, Y: 4}, q.TopRight},
		{coords.Term{X: 8, Y: 4.5}, q.BottomLeft},
		{coords.Term{X: 9, Y: 4.5}, q.BottomRight},
	}, rec.twoxels)
	assert.Empty(t, rec.octads)
}

func TestBlockNearInt16Limits(t *testing.T) {
	for _, b := range []coords.Block{{X: 20000, Y: 10000}, {X: math.MaxInt16, Y: math.MinInt16}} {
		var rec recorder
		draw.Block(&rec, b, shade.Magenta)
		require.Len(t, rec.twoxels, 4)

		at := b.Term()
		assert.Equal(t, at, rec.twoxels[0].at, "block %v", b)
		assert.Equal(t, at.Add(coords.Term{X: 1, Y: 0.5}), rec.twoxels[3].at, "block %v", b)
	}
}

func TestPieceCellsSaturate(t *testing.T) {
	anchor := coords.Block{X: math.MaxInt16 - 1, Y: 0}
	var xs []int16
	for b := range draw.PieceCells(tetromino.I, tetromino.North, anchor) {
		xs = append(xs, b.X)
	}
	assert.Equal(t, []int16{math.MaxInt16 - 1, math.MaxInt16, math.MaxInt16, math.MaxInt16}, xs)
}

func TestFrameLargeField(t *testing.T) {
	var rec recorder
	draw.Frame(&rec, coords.Block{X: 30000, Y: 0}, 10000, 1, shade.White)
	require.NotEmpty(t, rec.octads)

	last := rec.octads[len(rec.octads)-1].at
	assert.Equal(t, coords.Term{X: 60000 - 0.5 + 20000.5, Y: -0.25 + 1.25}, last)
}

func TestPieceCells(t *testing.T) {
	cells := slices.Collect(draw.PieceCells(tetromino.T, tetromino.North, coords.Block{X: 4, Y: 4}))
	assert.Equal(t, []coords.Block{{X: 5, Y: 4}, {X: 4, Y: 5}, {X: 5, Y: 5}, {X: 6, Y: 5}}, cells)

	assert.Empty(t, slices.Collect(draw.PieceCells(tetromino.Kind(9), tetromino.North, coords.Block{})))
}

func TestPiecePlotsSixteenTwoxels(t *testing.T) {
	for _, kind := range tetromino.Kinds {
		for rot := range tetromino.Rotation(tetromino.NumRotations) {
			var rec recorder
			draw.Piece(&rec, kind, rot, coords.Block{X: -1, Y: 3}, shade.KindColor(kind))
			require.Len(t, rec.twoxels, 16, "%v %v", kind, rot)

			seen := map[coords.Term]bool{}
			for _, p := range rec.twoxels {
				seen[p.at] = true
			}
			assert.Len(t, seen, 16, "%v %v overlaps", kind, rot)
		}
	}
}

func TestPieceShadesEveryBlockAlike(t *testing.T) {
	var rec recorder
	draw.Piece(&rec, tetromino.I, tetromino.East, coords.Block{}, shade.Magenta)

	q := shade.Facets(shade.Magenta)
	for i, p := range rec.twoxels {
		assert.Equal(t, q.At(i%2, i%4/2), p.color, "twoxel %d", i)
	}
}

func TestFrame(t *testing.T) {
	var rec recorder
	origin := coords.Block{X: 8, Y: 1}
	draw.Frame(&rec, origin, 10, 20, shade.White)

	require.Empty(t, rec.twoxels)
	assert.Len(t, rec.octads, 2*42+2*80)

	// The field itself spans Term [16, 36) x [1, 21); the outline sits one
	// octad outside of it.
	left, top := float32(16-0.5), float32(1-0.25)
	right, bottom := float32(36), float32(21)
	seen := map[coords.Term]bool{}
	for _, p := range rec.octads {
		assert.Equal(t, shade.White, p.color)
		onVertical := p.at.X == left || p.at.X == right
		onHorizontal := p.at.Y == top || p.at.Y == bottom
		assert.True(t, onVertical || onHorizontal, "octad %v inside the field", p.at)
		assert.True(t, p.at.X >= left && p.at.X <= right && p.at.Y >= top && p.at.Y <= bottom)
		seen[p.at] = true
	}
	assert.Len(t, seen, len(rec.octads))
	for _, corner := range []coords.Term{{X: left, Y: top}, {X: right, Y: top}, {X: left, Y: bottom}, {X: right, Y: bottom}} {
		assert.True(t, seen[corner], "corner %v", corner)
	}
}

func TestFrameEmptyField(t *testing.T) {
	var rec recorder
	draw.Frame(&rec, coords.Block{}, 0, 5, shade.White)
	draw.Frame(&rec, coords.Block{}, 5, -1, shade.White)
	assert.Empty(t, rec.octads)
}
