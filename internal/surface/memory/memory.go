// Package memory is a render surface that records plots instead of drawing
// them. It backs the headless mode and the tests.
package memory

import (
	"math"
	"strings"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/internal/input"
	"github.com/plus3/termtris/shade"
)

// Plot is one recorded sub-cell.
type Plot struct {
	Octad bool
	At    coords.Term
	Color shade.Color
}

// Surface collects the plots of the current frame.
type Surface struct {
	plots   []Plot
	frames  int
	pending []input.Event
}

// New returns an empty surface.
func New() *Surface {
	return &Surface{}
}

// PlotTwoxel records a twoxel plot.
func (s *Surface) PlotTwoxel(p coords.Term, c shade.Color) {
	s.plots = append(s.plots, Plot{At: p, Color: c})
}

// PlotOctad records an octad plot.
func (s *Surface) PlotOctad(p coords.Term, c shade.Color) {
	s.plots = append(s.plots, Plot{Octad: true, At: p, Color: c})
}

// Begin discards the previous frame.
func (s *Surface) Begin() {
	s.plots = s.plots[:0]
}

// End completes a frame. It never fails.
func (s *Surface) End() error {
	s.frames++
	return nil
}

// Frames counts End calls.
func (s *Surface) Frames() int {
	return s.frames
}

// Plots returns the current frame's plots in call order. The slice is reused
// by the next Begin.
func (s *Surface) Plots() []Plot {
	return s.plots
}

// Count returns the number of twoxel and octad plots.
func (s *Surface) Count() (twoxels, octads int) {
	for _, p := range s.plots {
		if p.Octad {
			octads++
		} else {
			twoxels++
		}
	}
	return twoxels, octads
}

// Feed queues events for the next Poll.
func (s *Surface) Feed(events ...input.Event) {
	s.pending = append(s.pending, events...)
}

// Poll returns and clears the queued events.
func (s *Surface) Poll() []input.Event {
	events := s.pending
	s.pending = nil
	return events
}

// ASCII renders the frame on a twoxel grid: '#' for twoxels and '+' for the
// twoxel an octad falls in, cropped to the plotted area. Twoxels win over
// octads.
func (s *Surface) ASCII() string {
	if len(s.plots) == 0 {
		return ""
	}

	type cell struct{ x, y int }
	marks := make(map[cell]byte, len(s.plots))
	minX, minY := math.MaxInt, math.MaxInt
	maxX, maxY := math.MinInt, math.MinInt
	for _, p := range s.plots {
		c := cell{int(math.Floor(float64(p.At.X))), int(math.Floor(float64(p.At.Y) * 2))}
		if p.Octad {
			if _, ok := marks[c]; !ok {
				marks[c] = '+'
			}
		} else {
			marks[c] = '#'
		}
		minX, maxX = min(minX, c.x), max(maxX, c.x)
		minY, maxY = min(minY, c.y), max(maxY, c.y)
	}

	var sb strings.Builder
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if m, ok := marks[cell{x, y}]; ok {
				sb.WriteByte(m)
			} else {
				sb.WriteByte(' ')
			}
		}
		if y < maxY {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
