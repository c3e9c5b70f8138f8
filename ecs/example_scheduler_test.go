package ecs_test

import (
	"fmt"

	"github.com/plus3/termtris/ecs"
)

// ExampleScheduler steps a falling anchor with a fixed timestep. Query fields
// are bound at registration and refreshed before each frame.
func ExampleScheduler() {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Anchor](registry)
	ecs.RegisterComponent[Fall](registry)
	storage := ecs.NewStorage(registry)

	storage.Spawn(Anchor{X: 4, Y: 4}, Fall{Speed: 2})

	scheduler := ecs.NewScheduler(storage)
	scheduler.Register(&dropSystem{})

	for range 4 {
		scheduler.Once(0.5)
	}

	view := ecs.NewView[struct{ *Anchor }](storage)
	for item := range view.Values() {
		fmt.Printf("anchor (%d, %d)\n", item.Anchor.X, item.Anchor.Y)
	}

	// Output:
	// anchor (4, 8)
}

// ExampleStorage_ReadSingleton reads a world-wide value outside of a system.
func ExampleStorage_ReadSingleton() {
	storage := ecs.NewStorage(ecs.NewComponentRegistry())
	ecs.NewSingleton[Anchor](storage, Anchor{X: 8, Y: 1})

	var origin *Anchor
	if storage.ReadSingleton(&origin) {
		fmt.Printf("origin (%d, %d)\n", origin.X, origin.Y)
	}

	var missing *Fall
	fmt.Println("fall present:", storage.ReadSingleton(&missing))

	// Output:
	// origin (8, 1)
	// fall present: false
}
