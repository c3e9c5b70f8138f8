package ecs

import (
	"iter"
	"reflect"
	"slices"
)

type byTypeName []reflect.Type

func (a byTypeName) Len() int           { return len(a) }
func (a byTypeName) Swap(i, j int)      { a[i], a[j] = a[j], a[i] }
func (a byTypeName) Less(i, j int) bool { return a[i].String() < a[j].String() }

// Archetype holds every entity that has exactly one particular set of
// component types. Each type gets its own column; a slot index addresses the
// same entity in every column.
type Archetype struct {
	id      uint32
	types   []reflect.Type
	columns []componentStorage
}

// NewArchetype creates an archetype for the given sorted component types.
// It panics if any type is missing from the registry.
func NewArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:      id,
		types:   types,
		columns: make([]componentStorage, len(types)),
	}
	for i, typ := range types {
		factory := registry.factory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.columns[i] = factory()
	}
	return a
}

// Spawn appends one entity and returns its slot index.
func (a *Archetype) Spawn(components []any) uint32 {
	slot := -1
	for _, comp := range components {
		idx := a.column(componentType(comp))
		if idx < 0 {
			continue
		}
		slot = a.columns[idx].Append(comp)
	}
	return uint32(slot)
}

// GetComponent returns a pointer to the component of compType at slot, or nil.
func (a *Archetype) GetComponent(slot uint32, compType reflect.Type) any {
	idx := a.column(compType)
	if idx < 0 {
		return nil
	}
	return a.columns[idx].Get(int(slot))
}

// Delete clears the slot in every column. Other slots keep their index.
func (a *Archetype) Delete(slot uint32) {
	for _, c := range a.columns {
		c.Delete(int(slot))
	}
}

// HasComponent checks if this archetype has the given component type.
func (a *Archetype) HasComponent(compType reflect.Type) bool {
	return slices.Contains(a.types, compType)
}

// ID returns the archetype's hash identifier.
func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the sorted component types of this archetype.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

// Len is the number of live entities.
func (a *Archetype) Len() int {
	if len(a.columns) == 0 {
		return 0
	}
	return a.columns[0].Len()
}

// Iter yields the EntityId of every live entity.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		if len(a.columns) == 0 {
			return
		}
		for slot := range a.columns[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(slot))) {
				return
			}
		}
	}
}

func (a *Archetype) column(t reflect.Type) int {
	return slices.Index(a.types, t)
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}
