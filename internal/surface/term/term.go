// Package term renders onto a character terminal through tcell. Twoxels are
// drawn as half blocks and octads as braille dots.
package term

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/internal/input"
	"github.com/plus3/termtris/shade"
)

// eventBacklog bounds the events buffered between two polls.
const eventBacklog = 64

// Surface owns a tcell screen for the lifetime of the program. Plot calls go
// to a Buffer that End flushes to the screen.
type Surface struct {
	screen tcell.Screen
	buf    *Buffer
	events chan tcell.Event
	quit   chan struct{}
}

// New opens the controlling terminal.
func New() (*Surface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return Open(screen)
}

// Open initialises screen and starts forwarding its events.
func Open(screen tcell.Screen) (*Surface, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()
	screen.Clear()

	cols, rows := screen.Size()
	s := &Surface{
		screen: screen,
		buf:    NewBuffer(cols, rows),
		events: make(chan tcell.Event, eventBacklog),
		quit:   make(chan struct{}),
	}
	go screen.ChannelEvents(s.events, s.quit)
	return s, nil
}

// PlotTwoxel and PlotOctad draw into the frame buffer.
func (s *Surface) PlotTwoxel(p coords.Term, c shade.Color) { s.buf.PlotTwoxel(p, c) }
func (s *Surface) PlotOctad(p coords.Term, c shade.Color)  { s.buf.PlotOctad(p, c) }

// Begin starts a frame, following terminal resizes.
func (s *Surface) Begin() {
	cols, rows := s.screen.Size()
	if bc, br := s.buf.Size(); bc != cols || br != rows {
		s.buf.Resize(cols, rows)
		return
	}
	s.buf.Clear()
}

// End writes the frame to the terminal.
func (s *Surface) End() error {
	cols, rows := s.buf.Size()
	for y := range rows {
		for x := range cols {
			r, fg, bg, ok := s.buf.Cell(x, y)
			if !ok {
				s.screen.SetContent(x, y, blank, nil, tcell.StyleDefault)
				continue
			}
			style := tcell.StyleDefault.Foreground(toTcell(fg)).Background(toTcell(bg))
			s.screen.SetContent(x, y, r, nil, style)
		}
	}
	s.screen.Show()
	return nil
}

// Poll drains the events received since the last call without blocking.
// Terminals report presses only.
func (s *Surface) Poll() []input.Event {
	var out []input.Event
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				return out
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if k := translate(ev); k != input.KeyUnknown {
					out = append(out, input.Press(k))
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		default:
			return out
		}
	}
}

// Close restores the terminal.
func (s *Surface) Close() {
	close(s.quit)
	s.screen.Fini()
}

func translate(ev *tcell.EventKey) input.Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return input.KeyLeft
	case tcell.KeyRight:
		return input.KeyRight
	case tcell.KeyUp:
		return input.KeyUp
	case tcell.KeyDown:
		return input.KeyDown
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return input.KeyEscape
	case tcell.KeyTab:
		return input.KeyTab
	case tcell.KeyRune:
		return input.KeyFromRune(ev.Rune())
	}
	return input.KeyUnknown
}

// toTcell maps transparent colors to the terminal default.
func toTcell(c shade.Color) tcell.Color {
	if c.A == 0 {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
