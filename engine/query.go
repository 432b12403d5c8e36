package engine

import (
	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/core"
)

// EntitiesWith returns every entity carrying all tags in mask, in spawn order
func (w *World) EntitiesWith(mask component.TagMask) []core.Entity {
	var result []core.Entity
	for _, e := range w.Components.Tag.GetAllEntities() {
		if w.Tags(e).Has(mask) {
			result = append(result, e)
		}
	}
	return result
}

// MovableIndex maps each occupied cell to the movable entity standing on it
// Built from live positions; when two movables share a cell the later-spawned one wins
func (w *World) MovableIndex() map[core.Point]core.Entity {
	movables := w.EntitiesWith(component.TagMovable)
	index := make(map[core.Point]core.Entity, len(movables))
	for _, e := range movables {
		if pos, ok := w.Positions.GetPosition(e); ok {
			index[pos] = e
		}
	}
	return index
}

// BlockerCells returns the set of cells holding an entity that terminates push chains
func (w *World) BlockerCells() map[core.Point]struct{} {
	cells := make(map[core.Point]struct{})
	for _, e := range w.EntitiesWith(component.TagImmovable) {
		if !w.Tags(e).Blocks() {
			continue
		}
		if pos, ok := w.Positions.GetPosition(e); ok {
			cells[pos] = struct{}{}
		}
	}
	return cells
}

// MustMovablePosition returns the live position of an entity the caller expects to move
// Panics with InvariantError when the entity is unpositioned or not movable
func (w *World) MustMovablePosition(e core.Entity) core.Point {
	if !w.Tags(e).Has(component.TagMovable) {
		panicInvariant(e, "expected movable entity, has tags %s", w.Tags(e))
	}
	pos, ok := w.Positions.GetPosition(e)
	if !ok {
		panicInvariant(e, "movable entity has no position")
	}
	return pos
}
