package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// View matches entities against a struct of component pointers.
//
// T must be a struct whose fields are pointers to component types. Embedded
// fields are required; named fields may be tagged `ecs:"optional"`, in which
// case they are nil for entities that lack the component.
type View[T any] struct {
	storage     *Storage
	types       []reflect.Type
	optional    []bool
	fieldOffset []uintptr
}

// NewView builds a view for T. It panics if T is not a struct of pointers.
func NewView[T any](storage *Storage) *View[T] {
	structType := reflect.TypeFor[T]()
	if structType.Kind() != reflect.Struct {
		panic("View type parameter must be a struct")
	}

	v := &View[T]{storage: storage}
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Ptr {
			panic("View struct fields must be pointer types")
		}

		isOptional := false
		if !field.Anonymous {
			switch tag := field.Tag.Get("ecs"); tag {
			case "":
			case "optional":
				isOptional = true
			default:
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
		}

		v.types = append(v.types, field.Type.Elem())
		v.optional = append(v.optional, isOptional)
		v.fieldOffset = append(v.fieldOffset, field.Offset)
	}
	return v
}

// Fill points the fields of *ptr at the entity's components. It returns false
// when a required component is missing.
func (v *View[T]) Fill(id EntityId, ptr *T) bool {
	archetype, ok := v.storage.archetypes.Get(id.ArchetypeId())
	if !ok || !archetype.columns[0].Has(int(id.Index())) {
		return false
	}
	return v.populate(unsafe.Pointer(ptr), archetype, int(id.Index()), v.columnIndices(archetype))
}

// Get returns a filled T for the entity, or nil.
func (v *View[T]) Get(id EntityId) *T {
	var result T
	if !v.Fill(id, &result) {
		return nil
	}
	return &result
}

func (v *View[T]) matches(archetype *Archetype) bool {
	for i, typ := range v.types {
		if !v.optional[i] && !archetype.HasComponent(typ) {
			return false
		}
	}
	return true
}

// columnIndices maps each view field to its column in archetype, -1 if absent.
func (v *View[T]) columnIndices(archetype *Archetype) []int {
	indices := make([]int, len(v.types))
	for i, typ := range v.types {
		indices[i] = archetype.column(typ)
	}
	return indices
}

func (v *View[T]) populate(dst unsafe.Pointer, archetype *Archetype, slot int, indices []int) bool {
	for i, col := range indices {
		field := unsafe.Pointer(uintptr(dst) + v.fieldOffset[i])

		var component any
		if col >= 0 {
			component = archetype.columns[col].Get(slot)
		}
		if component == nil {
			if !v.optional[i] {
				return false
			}
			*(*unsafe.Pointer)(field) = nil
			continue
		}
		*(*unsafe.Pointer)(field) = (*iface)(unsafe.Pointer(&component)).data
	}
	return true
}

func (v *View[T]) iterArchetype(archetype *Archetype) iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		if len(archetype.columns) == 0 {
			return
		}
		indices := v.columnIndices(archetype)

		var result T
		for slot := range archetype.columns[0].Iter() {
			if !v.populate(unsafe.Pointer(&result), archetype, slot, indices) {
				continue
			}
			if !yield(NewEntityId(archetype.id, uint32(slot)), result) {
				return
			}
		}
	}
}

// Iter yields every matching entity with its filled view struct, archetypes
// in creation order.
func (v *View[T]) Iter() iter.Seq2[EntityId, T] {
	return func(yield func(EntityId, T) bool) {
		for _, archetype := range v.storage.order {
			if !v.matches(archetype) {
				continue
			}
			for id, item := range v.iterArchetype(archetype) {
				if !yield(id, item) {
					return
				}
			}
		}
	}
}

// Values is Iter without the entity IDs.
func (v *View[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range v.Iter() {
			if !yield(item) {
				return
			}
		}
	}
}

// Spawn creates an entity from the non-nil fields of data.
func (v *View[T]) Spawn(data T) EntityId {
	base := unsafe.Pointer(&data)
	components := make([]any, 0, len(v.types))
	for i, typ := range v.types {
		ptr := *(*unsafe.Pointer)(unsafe.Pointer(uintptr(base) + v.fieldOffset[i]))
		if ptr == nil {
			if !v.optional[i] {
				panic("required component is nil in View.Spawn")
			}
			continue
		}
		components = append(components, reflect.NewAt(typ, ptr).Elem().Interface())
	}
	return v.storage.Spawn(components...)
}
