package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/core"
)

func TestEntitiesWith(t *testing.T) {
	w := NewWorld(core.Grid{Width: 10, Height: 10})
	player := w.SpawnKind(component.KindPlayer, core.Point{X: 5, Y: 5}, 0)
	box := w.SpawnKind(component.KindBox, core.Point{X: 4, Y: 6}, 0)
	wall := w.SpawnKind(component.KindWall, core.Point{X: 3, Y: 6}, 0)
	funnel := w.SpawnKind(component.KindFunnel, core.Point{X: 5, Y: 6}, component.DirDown)

	assert.Equal(t, []core.Entity{player, box}, w.EntitiesWith(component.TagMovable))
	assert.Equal(t, []core.Entity{player}, w.EntitiesWith(component.TagPlayer))
	assert.Equal(t, []core.Entity{wall}, w.EntitiesWith(component.TagImmovable))
	assert.Equal(t, []core.Entity{funnel}, w.EntitiesWith(component.TagTrigger))

	o, ok := w.Components.Orientation.GetComponent(funnel)
	assert.True(t, ok)
	assert.Equal(t, component.DirDown, o.Dir)
	assert.False(t, w.Components.Orientation.HasEntity(box))
}

func TestMovableIndexAndBlockers(t *testing.T) {
	w := NewWorld(core.Grid{Width: 10, Height: 10})
	box := w.SpawnKind(component.KindBox, core.Point{X: 4, Y: 6}, 0)
	w.SpawnKind(component.KindWall, core.Point{X: 3, Y: 6}, 0)
	w.SpawnKind(component.KindFunnel, core.Point{X: 4, Y: 6}, component.DirUp)
	// Movable and Immovable at once chains instead of blocking
	hybrid := w.SpawnTagged(component.TagMovable|component.TagImmovable, core.Point{X: 8, Y: 8})

	assert.Equal(t, map[core.Point]core.Entity{
		{X: 4, Y: 6}: box,
		{X: 8, Y: 8}: hybrid,
	}, w.MovableIndex())
	assert.Equal(t, map[core.Point]struct{}{{X: 3, Y: 6}: {}}, w.BlockerCells())
}

func TestMustMovablePositionPanics(t *testing.T) {
	w := NewWorld(core.Grid{Width: 10, Height: 10})
	wall := w.SpawnKind(component.KindWall, core.Point{X: 3, Y: 6}, 0)
	box := w.SpawnKind(component.KindBox, core.Point{X: 4, Y: 6}, 0)

	assert.Equal(t, core.Point{X: 4, Y: 6}, w.MustMovablePosition(box))

	assert.PanicsWithError(t, "invariant violated: entity 1: expected movable entity, has tags immovable", func() {
		w.MustMovablePosition(wall)
	})

	w.Positions.RemoveEntity(box)
	defer func() {
		r := recover()
		err, ok := r.(*InvariantError)
		if assert.True(t, ok, "expected *InvariantError, got %T", r) {
			assert.Equal(t, box, err.Entity)
			assert.Contains(t, err.Error(), "no position")
		}
	}()
	w.MustMovablePosition(box)
}
