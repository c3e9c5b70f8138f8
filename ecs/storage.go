package ecs

import (
	"reflect"
	"slices"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage owns all archetypes and singletons of one world.
type Storage struct {
	registry   *ComponentRegistry
	archetypes *intmap.Map[uint32, *Archetype]
	order      []*Archetype
	singletons *intmap.Map[uintptr, *singletonEntry]
}

type singletonEntry struct {
	typ     reflect.Type
	value   reflect.Value // *T
	dataPtr unsafe.Pointer
}

// NewStorage creates an empty storage bound to registry.
func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: intmap.New[uintptr, *singletonEntry](8),
	}
}

// Archetypes returns the archetypes in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.order
}

// GetArchetype returns the archetype holding exactly the given component
// types, or nil if no entity was ever spawned with that set.
func (s *Storage) GetArchetype(components ...any) *Archetype {
	types := extractComponentTypes(components)
	a, _ := s.archetypes.Get(hashTypesToUint32(types))
	return a
}

// GetArchetypeByTypes is GetArchetype keyed by reflect.Type.
func (s *Storage) GetArchetypeByTypes(types []reflect.Type) *Archetype {
	sorted := slices.Clone(types)
	sort.Sort(byTypeName(sorted))
	a, _ := s.archetypes.Get(hashTypesToUint32(sorted))
	return a
}

// GetArchetypeById returns the archetype with the given id, or nil.
func (s *Storage) GetArchetypeById(id uint32) *Archetype {
	a, _ := s.archetypes.Get(id)
	return a
}

func (s *Storage) archetypeFor(types []reflect.Type) *Archetype {
	id := hashTypesToUint32(types)
	if a, ok := s.archetypes.Get(id); ok {
		return a
	}
	a := NewArchetype(id, types, s.registry)
	s.archetypes.Put(id, a)
	s.order = append(s.order, a)
	return a
}

// Spawn creates a new entity with the provided components.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}
	types := extractComponentTypes(components)
	a := s.archetypeFor(types)
	return NewEntityId(a.id, a.Spawn(components))
}

// Delete removes the entity. Unknown IDs are ignored.
func (s *Storage) Delete(id EntityId) {
	if a, ok := s.archetypes.Get(id.ArchetypeId()); ok {
		a.Delete(id.Index())
	}
}

// Alive reports whether id still addresses a live entity.
func (s *Storage) Alive(id EntityId) bool {
	a, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok || len(a.columns) == 0 {
		return false
	}
	return a.columns[0].Has(int(id.Index()))
}

// AddComponent moves the entity to the archetype that also contains the new
// component and returns the entity's new ID. Adding a type the entity already
// has replaces the value in place.
func (s *Storage) AddComponent(id EntityId, component any) EntityId {
	old, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return 0
	}
	compType := componentType(component)
	if old.HasComponent(compType) {
		ptr := reflect.ValueOf(old.GetComponent(id.Index(), compType))
		val := reflect.ValueOf(component)
		if val.Kind() == reflect.Ptr {
			val = val.Elem()
		}
		ptr.Elem().Set(val)
		return id
	}

	types := make([]reflect.Type, 0, len(old.types)+1)
	types = append(types, old.types...)
	types = append(types, compType)
	sort.Sort(byTypeName(types))

	return s.migrate(id, old, types, component)
}

// RemoveComponent moves the entity to the archetype without compType and
// returns its new ID. Removing the last component deletes the entity and
// returns 0.
func (s *Storage) RemoveComponent(id EntityId, compType reflect.Type) EntityId {
	old, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok || !old.HasComponent(compType) {
		return id
	}

	types := make([]reflect.Type, 0, len(old.types)-1)
	for _, typ := range old.types {
		if typ != compType {
			types = append(types, typ)
		}
	}
	if len(types) == 0 {
		old.Delete(id.Index())
		return 0
	}
	return s.migrate(id, old, types, nil)
}

func (s *Storage) migrate(id EntityId, old *Archetype, types []reflect.Type, extra any) EntityId {
	target := s.archetypeFor(types)
	components := make([]any, 0, len(types))
	for _, typ := range types {
		if extra != nil && typ == componentType(extra) {
			components = append(components, extra)
			continue
		}
		components = append(components, old.GetComponent(id.Index(), typ))
	}
	slot := target.Spawn(components)
	old.Delete(id.Index())
	return NewEntityId(target.id, slot)
}

// GetComponent returns a pointer to the component of compType, or nil.
func (s *Storage) GetComponent(id EntityId, compType reflect.Type) any {
	a, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return a.GetComponent(id.Index(), compType)
}

// HasComponent checks if an entity has a specific component type.
func (s *Storage) HasComponent(id EntityId, compType reflect.Type) bool {
	a, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return false
	}
	return a.HasComponent(compType)
}

// AddSingleton stores value as the single instance of its type, replacing any
// previous value. Singletons do not need to be registered.
func (s *Storage) AddSingleton(value any) {
	val := reflect.ValueOf(value)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	typ := val.Type()

	if entry, ok := s.singletons.Get(typeKey(typ)); ok {
		entry.value.Elem().Set(val)
		return
	}

	ptr := reflect.New(typ)
	ptr.Elem().Set(val)
	s.singletons.Put(typeKey(typ), &singletonEntry{
		typ:     typ,
		value:   ptr,
		dataPtr: ptr.UnsafePointer(),
	})
}

// ReadSingleton points *out at the stored singleton. out must be a **T.
// It returns false when no singleton of type T exists.
func (s *Storage) ReadSingleton(out any) bool {
	dst := reflect.ValueOf(out)
	if dst.Kind() != reflect.Ptr || dst.Elem().Kind() != reflect.Ptr {
		panic("ReadSingleton expects a pointer to a pointer")
	}
	entry := s.getSingletonEntry(dst.Elem().Type().Elem())
	if entry == nil {
		return false
	}
	dst.Elem().Set(entry.value)
	return true
}

// RemoveSingleton drops the singleton of the given type.
func (s *Storage) RemoveSingleton(typ reflect.Type) {
	s.singletons.Del(typeKey(typ))
}

func (s *Storage) getSingletonEntry(typ reflect.Type) *singletonEntry {
	entry, _ := s.singletons.Get(typeKey(typ))
	return entry
}

// extractComponentTypes returns the sorted value types of components.
func extractComponentTypes(components []any) []reflect.Type {
	types := make([]reflect.Type, 0, len(components))
	for _, comp := range components {
		t := componentType(comp)
		switch t.Kind() {
		case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func:
			panic("components cannot be pointers, maps, channels, or functions")
		}
		types = append(types, t)
	}
	sort.Sort(byTypeName(types))
	return types
}

// typeKey identifies a reflect.Type by its runtime descriptor address.
func typeKey(t reflect.Type) uintptr {
	return uintptr((*iface)(unsafe.Pointer(&t)).data)
}

// hashTypesToUint32 is FNV-1a over the descriptor addresses of sorted types.
func hashTypesToUint32(types []reflect.Type) uint32 {
	var h uint32 = 2166136261
	const prime uint32 = 16777619

	for _, t := range types {
		key := typeKey(t)
		val := uint32(key)
		if unsafe.Sizeof(uintptr(0)) == 8 {
			val ^= uint32(uint64(key) >> 32)
		}
		h ^= val
		h *= prime
	}
	return h
}

// ComponentReader is anything that can resolve an entity's component.
type ComponentReader interface {
	GetComponent(EntityId, reflect.Type) any
}

// ReadComponent returns the entity's T, or nil if it has none.
func ReadComponent[T any](reader ComponentReader, entityId EntityId) *T {
	c, _ := reader.GetComponent(entityId, reflect.TypeFor[T]()).(*T)
	return c
}
