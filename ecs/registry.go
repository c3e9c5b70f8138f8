package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// iface mirrors the runtime layout of an interface value so component
// pointers can be pulled out of an `any` without reflection.
type iface struct {
	typ  unsafe.Pointer
	data unsafe.Pointer
}

// componentStorage is the type-erased column used by an Archetype.
type componentStorage interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Has(index int) bool
	Len() int
	Iter() iter.Seq[int]
}

// ComponentRegistry maps component types to column factories. Every Storage
// owns one, so independent worlds never share registrations.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStorage
}

// NewComponentRegistry creates an empty registry.
func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStorage),
	}
}

// RegisterComponent makes T usable as a component in storages built from r.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() componentStorage {
		return &column[T]{}
	}
}

// Registered reports whether the type has been registered.
func (r *ComponentRegistry) Registered(t reflect.Type) bool {
	_, ok := r.factories[t]
	return ok
}

func (r *ComponentRegistry) factory(t reflect.Type) func() componentStorage {
	return r.factories[t]
}
