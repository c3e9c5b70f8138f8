package game_test

import (
	"fmt"

	"github.com/plus3/termtris/coords"
	"github.com/plus3/termtris/internal/game"
	"github.com/plus3/termtris/internal/surface/memory"
)

func ExampleWorld_Step() {
	cfg := game.DefaultConfig()
	cfg.Width, cfg.Height = 4, 4
	cfg.Origin = coords.Block{}
	cfg.Start = coords.Block{}
	cfg.FallSpeed = 0

	world := game.New(cfg)
	surface := memory.New()
	world.Attach(surface)

	world.Step(1.0/60, nil)
	fmt.Println(surface.ASCII())

	// Output:
	// ++++++++++
	// +  ##    +
	// +  ##    +
	// +######  +
	// +######  +
	// +        +
	// +        +
	// +        +
	// +        +
	// ++++++++++
}
