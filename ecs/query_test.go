package ecs_test

import (
	"testing"

	"github.com/plus3/termtris/ecs"
	"github.com/stretchr/testify/assert"
)

func TestQuery(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Anchor{X: 1}, Spin{})
	storage.Spawn(Anchor{X: 2}, Spin{}, Tint{})
	storage.Spawn(Anchor{X: 3})

	query := ecs.NewQuery[pieceView](storage)

	t.Run("panics before execute", func(t *testing.T) {
		assert.Panics(t, func() {
			for range query.Iter() {
			}
		})
		assert.Panics(t, func() {
			for range query.Values() {
			}
		})
	})

	t.Run("execute snapshots matches", func(t *testing.T) {
		query.Execute()
		assert.Equal(t, 2, query.Len())

		ids := map[ecs.EntityId]bool{}
		for id := range query.Iter() {
			ids[id] = true
		}
		assert.Len(t, ids, 2)
	})

	t.Run("snapshot ignores later spawns until next execute", func(t *testing.T) {
		storage.Spawn(Anchor{X: 4}, Spin{}, Label("new archetype"))
		assert.Equal(t, 2, query.Len())

		query.Execute()
		assert.Equal(t, 3, query.Len())
	})

	t.Run("first", func(t *testing.T) {
		_, item, ok := query.First()
		assert.True(t, ok)
		assert.NotNil(t, item.Anchor)

		empty := ecs.NewQuery[struct{ *Fall }](storage)
		empty.Execute()
		_, _, ok = empty.First()
		assert.False(t, ok)
	})
}
