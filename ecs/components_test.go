package ecs_test

import "github.com/plus3/termtris/ecs"

type Anchor struct {
	X, Y int16
}

type Spin struct {
	Quarter int
}

type Tint struct {
	R, G, B uint8
}

type Label string

type Fall struct {
	Speed, Timer float64
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Anchor](registry)
	ecs.RegisterComponent[Spin](registry)
	ecs.RegisterComponent[Tint](registry)
	ecs.RegisterComponent[Label](registry)
	ecs.RegisterComponent[Fall](registry)
	return registry
}
