package ecs

import "reflect"

// Commands buffers structural changes made while systems run. The Scheduler
// flushes the buffer after the last system of a frame, so queries never see
// entities appear or move mid-frame.
type Commands struct {
	spawns  [][]any
	deletes []EntityId
	adds    []componentChange
	removes []componentChange
	defers  []func()
}

type componentChange struct {
	entity    EntityId
	component any
	compType  reflect.Type
}

func newCommands() *Commands {
	return &Commands{}
}

// Spawn queues an entity with the given components.
func (c *Commands) Spawn(components ...any) {
	c.spawns = append(c.spawns, components)
}

// Delete queues removal of an entity.
func (c *Commands) Delete(entity EntityId) {
	c.deletes = append(c.deletes, entity)
}

// AddComponent queues adding (or replacing) a component.
func (c *Commands) AddComponent(entity EntityId, component any) {
	c.adds = append(c.adds, componentChange{entity: entity, component: component})
}

// RemoveComponent queues removal of a component type.
func (c *Commands) RemoveComponent(entity EntityId, compType reflect.Type) {
	c.removes = append(c.removes, componentChange{entity: entity, compType: compType})
}

// Defer queues fn to run after all structural changes are applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Pending reports whether anything is queued.
func (c *Commands) Pending() bool {
	return len(c.spawns)+len(c.deletes)+len(c.adds)+len(c.removes)+len(c.defers) > 0
}

// Flush applies deletes, removes, adds, spawns and finally deferred functions,
// then resets the buffer. Adds and removes aimed at an entity deleted in the
// same flush are dropped.
func (c *Commands) Flush(storage *Storage) {
	deleted := make(map[EntityId]bool, len(c.deletes))
	for _, id := range c.deletes {
		storage.Delete(id)
		deleted[id] = true
	}
	for _, cmd := range c.removes {
		if !deleted[cmd.entity] {
			storage.RemoveComponent(cmd.entity, cmd.compType)
		}
	}
	for _, cmd := range c.adds {
		if !deleted[cmd.entity] {
			storage.AddComponent(cmd.entity, cmd.component)
		}
	}
	for _, components := range c.spawns {
		storage.Spawn(components...)
	}
	for _, fn := range c.defers {
		fn()
	}

	c.spawns = c.spawns[:0]
	c.deletes = c.deletes[:0]
	c.adds = c.adds[:0]
	c.removes = c.removes[:0]
	c.defers = c.defers[:0]
}
