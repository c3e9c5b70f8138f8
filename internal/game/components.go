// Package game owns the controlled piece and steps it frame by frame on top
// of the ecs scheduler. There is no board: the piece moves, rotates and falls
// inside an empty field, wrapping to the top when it reaches the bottom.
package game

import (
	"context"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/draw"
	"github.com/plus3/termtris/ecs"
	"github.com/plus3/termtris/internal/input"
	"github.com/plus3/termtris/shade"
	"github.com/plus3/termtris/tetromino"
)

// Piece is the shape and orientation of a piece entity.
type Piece struct {
	Kind     tetromino.Kind
	Rotation tetromino.Rotation
}

// Anchor is the field block under the mask's (0, 0) cell.
type Anchor struct {
	coords.Block
}

// Tint is the base color a piece is shaded from. A Fixed tint survives kind
// changes; otherwise the palette color of the new kind is taken.
type Tint struct {
	shade.Color
	Fixed bool
}

// Fall moves a piece down one block every 1/Speed seconds. Timer accumulates
// frame time.
type Fall struct {
	Speed float64
	Timer float64
}

// Field is the playfield geometry, in blocks, relative to the surface.
type Field struct {
	Origin        coords.Block
	Width, Height int16
	Border        shade.Color
}

// Input holds the events delivered for the current frame.
type Input struct {
	Events []input.Event
}

// Control carries loop state between the systems and the driver.
type Control struct {
	Quit   bool
	Frames int
}

// Presenter is a surface driven frame by frame that also delivers input.
type Presenter interface {
	draw.Surface
	input.Source
	Begin()
	End() error
}

// Display is the frame target of World.Run. A nil Target leaves framing to
// the caller of World.Step.
type Display struct {
	Target Presenter
	// Limit stops the run after this many frames; 0 runs until quit.
	Limit int
	Stop  context.CancelFunc
	Err   error
}

// Canvas is where RenderSystem draws. A nil Surface disables rendering.
type Canvas struct {
	Surface draw.Surface
}

// RegisterComponents registers every per-entity component of the game.
func RegisterComponents(registry *ecs.ComponentRegistry) {
	ecs.RegisterComponent[Piece](registry)
	ecs.RegisterComponent[Anchor](registry)
	ecs.RegisterComponent[Tint](registry)
	ecs.RegisterComponent[Fall](registry)
}
