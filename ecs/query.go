package ecs

import "iter"

// Query is a View whose matches are collected once per frame. The Scheduler
// executes every Query field of its systems before the frame starts, so
// systems iterate a stable snapshot while Commands queue structural changes.
type Query[T any] struct {
	view    *View[T]
	storage *Storage

	archetypes     []*Archetype
	archetypesSeen int

	entities   []EntityId
	components []T
	valid      bool
}

// NewQuery creates a query over storage.
func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds (or rebinds) the query to storage. Called by the Scheduler.
func (q *Query[T]) Init(storage *Storage) {
	q.view = NewView[T](storage)
	q.storage = storage
	q.archetypes = nil
	q.archetypesSeen = 0
	q.valid = false
}

// Execute rebuilds the per-frame snapshot.
func (q *Query[T]) Execute() {
	// archetypes are append-only, so only new ones need matching.
	for _, archetype := range q.storage.order[q.archetypesSeen:] {
		if q.view.matches(archetype) {
			q.archetypes = append(q.archetypes, archetype)
		}
	}
	q.archetypesSeen = len(q.storage.order)

	q.entities = q.entities[:0]
	q.components = q.components[:0]
	for _, archetype := range q.archetypes {
		for id, item := range q.view.iterArchetype(archetype) {
			q.entities = append(q.entities, id)
			q.components = append(q.components, item)
		}
	}
	q.valid = true
}

// Len is the number of entities in the current snapshot.
func (q *Query[T]) Len() int {
	return len(q.entities)
}

// Iter yields the snapshot. It panics if Execute has never run.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.valid {
		panic("Query.Iter() called before Query.Execute()")
	}
	return func(yield func(EntityId, T) bool) {
		for i := range q.entities {
			if !yield(q.entities[i], q.components[i]) {
				return
			}
		}
	}
}

// Values yields the snapshot's view structs. It panics if Execute has never run.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.valid {
		panic("Query.Values() called before Query.Execute()")
	}
	return func(yield func(T) bool) {
		for i := range q.components {
			if !yield(q.components[i]) {
				return
			}
		}
	}
}

// First returns the first entity of the snapshot, if any.
func (q *Query[T]) First() (EntityId, T, bool) {
	for id, item := range q.Iter() {
		return id, item, true
	}
	var zero T
	return 0, zero, false
}
