package game

import (
	"context"
	"time"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/draw"
	"github.com/plus3/termtris/ecs"
	"github.com/plus3/termtris/internal/input"
	"github.com/plus3/termtris/shade"
	"github.com/plus3/termtris/tetromino"
)

// World is one running game: the ecs storage holding the controlled piece,
// the frame singletons and the scheduler stepping them.
type World struct {
	Registry  *ecs.ComponentRegistry
	Storage   *ecs.Storage
	Scheduler *ecs.Scheduler

	piece    ecs.EntityId
	interval time.Duration
	input    *ecs.Singleton[Input]
	control  *ecs.Singleton[Control]
	canvas   *ecs.Singleton[Canvas]
	display  *ecs.Singleton[Display]
}

// New builds a world from a validated config. Systems run in the order
// present, input, fall, render.
func New(cfg Config) *World {
	registry := ecs.NewComponentRegistry()
	RegisterComponents(registry)
	storage := ecs.NewStorage(registry)

	ecs.NewSingleton(storage, Field{
		Origin: cfg.Origin,
		Width:  cfg.Width,
		Height: cfg.Height,
		Border: cfg.Border,
	})

	tint := Tint{Color: shade.KindColor(cfg.Piece)}
	if cfg.Color != (shade.Color{}) {
		tint = Tint{Color: cfg.Color, Fixed: true}
	}

	w := &World{
		Registry: registry,
		Storage:  storage,
		interval: cfg.FrameDuration(),
		input:    ecs.NewSingleton[Input](storage),
		control:  ecs.NewSingleton[Control](storage),
		canvas:   ecs.NewSingleton[Canvas](storage),
		display:  ecs.NewSingleton[Display](storage),
		piece: storage.Spawn(
			Piece{Kind: cfg.Piece, Rotation: tetromino.North},
			Anchor{Block: cfg.Start},
			tint,
			Fall{Speed: cfg.FallSpeed},
		),
	}

	w.Scheduler = ecs.NewScheduler(storage)
	w.Scheduler.Register(&PresentSystem{})
	w.Scheduler.Register(&InputSystem{})
	w.Scheduler.Register(&FallSystem{})
	w.Scheduler.Register(&RenderSystem{})
	return w
}

// Attach sets the surface RenderSystem draws on. nil detaches.
func (w *World) Attach(s draw.Surface) {
	w.canvas.Get().Surface = s
}

// Step runs one frame of dt seconds with the given events. It returns false
// once quit has been requested.
func (w *World) Step(dt float64, events []input.Event) bool {
	w.input.Get().Events = events
	w.Scheduler.Once(dt)
	w.input.Get().Events = nil

	control := w.control.Get()
	control.Frames++
	return !control.Quit
}

// Run attaches s and drives the world from the scheduler's ticker at the
// configured frame rate, measuring dt from the wall clock. It returns when
// ctx is done, quit is requested, limit frames have run (0 for no limit) or
// presenting a frame fails.
func (w *World) Run(ctx context.Context, s Presenter, limit int) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w.Attach(s)
	*w.display.Get() = Display{Target: s, Limit: limit, Stop: cancel}
	w.Scheduler.Run(ctx, w.interval)

	display := w.display.Get()
	err := display.Err
	*display = Display{}
	return err
}

// Frames is the number of completed frames.
func (w *World) Frames() int {
	return w.control.Get().Frames
}

// PieceEntity is the entity of the controlled piece.
func (w *World) PieceEntity() ecs.EntityId {
	return w.piece
}

// PieceState is a copy of the controlled piece.
type PieceState struct {
	Kind     tetromino.Kind
	Rotation tetromino.Rotation
	Anchor   coords.Block
	Color    shade.Color
	Timer    float64
}

// Controlled returns the current state of the controlled piece.
func (w *World) Controlled() (PieceState, bool) {
	piece := ecs.ReadComponent[Piece](w.Storage, w.piece)
	anchor := ecs.ReadComponent[Anchor](w.Storage, w.piece)
	tint := ecs.ReadComponent[Tint](w.Storage, w.piece)
	fall := ecs.ReadComponent[Fall](w.Storage, w.piece)
	if piece == nil || anchor == nil || tint == nil || fall == nil {
		return PieceState{}, false
	}
	return PieceState{
		Kind:     piece.Kind,
		Rotation: piece.Rotation,
		Anchor:   anchor.Block,
		Color:    tint.Color,
		Timer:    fall.Timer,
	}, true
}
