package game

import (
	"fmt"

	"github.com/plus3/termtris/draw"
	"github.com/plus3/termtris/ecs"
	"github.com/plus3/termtris/internal/input"
	"github.com/plus3/termtris/shade"
	"github.com/plus3/termtris/tetromino"
)

// PresentSystem frames a World.Run loop. It begins the display, loads the
// polled events into Input and defers presenting until the frame's commands
// flush, after every other system has run.
type PresentSystem struct {
	Display ecs.Singleton[Display]
	Input   ecs.Singleton[Input]
	Control ecs.Singleton[Control]
}

// Execute opens the frame and queues its completion.
func (s *PresentSystem) Execute(frame *ecs.UpdateFrame) {
	target := s.Display.Get().Target
	if target == nil {
		return
	}
	target.Begin()
	s.Input.Get().Events = target.Poll()

	frame.Commands.Defer(func() {
		s.Input.Get().Events = nil
		control := s.Control.Get()
		control.Frames++

		display := s.Display.Get()
		if err := target.End(); err != nil {
			display.Err = fmt.Errorf("frame %d: %w", control.Frames, err)
		}
		if display.Err != nil || control.Quit || (display.Limit > 0 && control.Frames >= display.Limit) {
			display.Stop()
		}
	})
}

type controlled struct {
	*Piece
	*Anchor
	*Tint
}

// InputSystem applies this frame's key presses. Releases are ignored.
//
//	q, esc      quit
//	e           rotate counter-clockwise
//	r, up       rotate clockwise
//	left, right move one block
//	down        move one block down
//	tab         next piece kind
type InputSystem struct {
	Pieces  ecs.Query[controlled]
	Input   ecs.Singleton[Input]
	Control ecs.Singleton[Control]
	Field   ecs.Singleton[Field]
}

// Execute applies key presses to every controlled piece and records quit
// requests in Control.
func (s *InputSystem) Execute(frame *ecs.UpdateFrame) {
	field := s.Field.Get()
	for _, ev := range s.Input.Get().Events {
		if !ev.Press {
			continue
		}
		if ev.Key == input.KeyQ || ev.Key == input.KeyEscape {
			s.Control.Get().Quit = true
			continue
		}
		for p := range s.Pieces.Values() {
			switch ev.Key {
			case input.KeyE:
				p.Rotation = p.Rotation.CCW()
			case input.KeyR, input.KeyUp:
				p.Rotation = p.Rotation.CW()
			case input.KeyLeft:
				p.Anchor.X--
			case input.KeyRight:
				p.Anchor.X++
			case input.KeyDown:
				stepDown(*p.Piece, p.Anchor, field)
			case input.KeyTab:
				p.Kind = p.Kind.Next()
				if !p.Tint.Fixed {
					p.Tint.Color = shade.KindColor(p.Kind)
				}
			default:
				continue
			}
			keepInside(*p.Piece, p.Anchor, field)
		}
	}
}

type falling struct {
	*Piece
	*Anchor
	*Fall
}

// FallSystem advances every falling piece by whole blocks as its timer
// accumulates.
type FallSystem struct {
	Pieces ecs.Query[falling]
	Field  ecs.Singleton[Field]
}

// Execute accumulates dt and steps pieces down once per 1/Speed seconds.
func (s *FallSystem) Execute(frame *ecs.UpdateFrame) {
	field := s.Field.Get()
	for p := range s.Pieces.Values() {
		if p.Fall.Speed <= 0 {
			continue
		}
		step := 1 / p.Fall.Speed
		p.Fall.Timer += frame.DeltaTime
		for p.Fall.Timer >= step {
			p.Fall.Timer -= step
			stepDown(*p.Piece, p.Anchor, field)
		}
	}
}

// RenderSystem draws the field outline and every piece onto the canvas.
type RenderSystem struct {
	Pieces ecs.Query[controlled]
	Field  ecs.Singleton[Field]
	Canvas ecs.Singleton[Canvas]
}

// Execute draws the border and the pieces. Nothing is drawn without a
// canvas surface.
func (s *RenderSystem) Execute(frame *ecs.UpdateFrame) {
	surface := s.Canvas.Get().Surface
	if surface == nil {
		return
	}
	field := s.Field.Get()
	draw.Frame(surface, field.Origin, field.Width, field.Height, field.Border)
	for p := range s.Pieces.Values() {
		draw.Piece(surface, p.Kind, p.Rotation, field.Origin.Add(p.Anchor.Block), p.Tint.Color)
	}
}

// stepDown moves the piece one block down, or back to the top row when its
// lowest cell already sits on the bottom row.
func stepDown(piece Piece, anchor *Anchor, field *Field) {
	minRow, _, maxRow, _, ok := tetromino.Occupancy(piece.Kind, piece.Rotation).Bounds()
	if !ok {
		return
	}
	anchor.Y++
	if anchor.Y+int16(maxRow) >= field.Height {
		anchor.Y = -int16(minRow)
	}
}

// keepInside shifts the anchor so every cell of the piece lies in the field.
func keepInside(piece Piece, anchor *Anchor, field *Field) {
	minRow, minCol, maxRow, maxCol, ok := tetromino.Occupancy(piece.Kind, piece.Rotation).Bounds()
	if !ok {
		return
	}
	anchor.X = max(-int16(minCol), min(anchor.X, field.Width-1-int16(maxCol)))
	anchor.Y = max(-int16(minRow), min(anchor.Y, field.Height-1-int16(maxRow)))
}
