package ecs_test

import (
	"testing"

	"github.com/plus3/termtris/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pieceView struct {
	*Anchor
	*Spin
}

type tintedView struct {
	*Anchor
	Tint *Tint `ecs:"optional"`
}

func TestViewIter(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	storage.Spawn(Anchor{X: 1}, Spin{Quarter: 0})
	storage.Spawn(Anchor{X: 2}, Spin{Quarter: 1}, Tint{R: 9})
	storage.Spawn(Anchor{X: 3})

	view := ecs.NewView[pieceView](storage)

	var xs []int16
	for _, p := range view.Iter() {
		xs = append(xs, p.Anchor.X)
	}
	assert.ElementsMatch(t, []int16{1, 2}, xs)

	for p := range view.Values() {
		p.Spin.Quarter = 3
	}
	for p := range view.Values() {
		assert.Equal(t, 3, p.Spin.Quarter)
	}
}

func TestViewOptional(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	plain := storage.Spawn(Anchor{X: 1})
	tinted := storage.Spawn(Anchor{X: 2}, Tint{G: 200})

	view := ecs.NewView[tintedView](storage)

	got := view.Get(plain)
	require.NotNil(t, got)
	assert.Nil(t, got.Tint)

	got = view.Get(tinted)
	require.NotNil(t, got)
	require.NotNil(t, got.Tint)
	assert.Equal(t, uint8(200), got.Tint.G)

	count := 0
	for range view.Iter() {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestViewGetMissing(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	id := storage.Spawn(Anchor{})
	view := ecs.NewView[pieceView](storage)

	assert.Nil(t, view.Get(id))

	storage.Delete(id)
	assert.Nil(t, ecs.NewView[struct{ *Anchor }](storage).Get(id))
}

func TestViewSpawn(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	view := ecs.NewView[tintedView](storage)

	id := view.Spawn(tintedView{Anchor: &Anchor{X: 5}})
	assert.Nil(t, ecs.ReadComponent[Tint](storage, id))
	assert.Equal(t, int16(5), ecs.ReadComponent[Anchor](storage, id).X)

	assert.Panics(t, func() { view.Spawn(tintedView{}) })
}

func TestViewBadTypes(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())

	assert.Panics(t, func() { ecs.NewView[Anchor](storage) })
	assert.Panics(t, func() { ecs.NewView[struct{ A Anchor }](storage) })
	assert.Panics(t, func() {
		ecs.NewView[struct {
			A *Anchor `ecs:"sometimes"`
		}](storage)
	})
}
