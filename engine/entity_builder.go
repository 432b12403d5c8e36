package engine

import (
	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/core"
)

// EntityBuilder reserves an entity ID and attaches components before Build commits it
//
// Example usage:
//
//	e := engine.WithPosition(
//	    engine.With(w.NewEntity(), w.Components.Tag, component.TagComponent{Mask: component.TagMovable}),
//	    core.Point{X: 4, Y: 6},
//	).Build()
type EntityBuilder struct {
	world  *World
	entity core.Entity
	built  bool
}

// NewEntity creates a new EntityBuilder with a reserved entity ID
func (w *World) NewEntity() *EntityBuilder {
	return &EntityBuilder{
		world:  w,
		entity: w.CreateEntity(),
	}
}

// With adds a component of type T to the entity being built
// Panics if called after Build
func With[T any](eb *EntityBuilder, store *Store[T], c T) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	store.SetComponent(eb.entity, c)
	return eb
}

// WithPosition places the entity being built on the grid
// Panics if called after Build
func WithPosition(eb *EntityBuilder, pos core.Point) *EntityBuilder {
	if eb.built {
		panic("entity already built - cannot add components after Build()")
	}
	eb.world.Positions.SetPosition(eb.entity, pos)
	return eb
}

// Build finalizes construction and returns the entity ID
func (eb *EntityBuilder) Build() core.Entity {
	eb.built = true
	return eb.entity
}

// SpawnKind builds an entity with the tag set of its kind
// facing is applied only to kinds that carry TagTrigger
func (w *World) SpawnKind(kind component.Kind, pos core.Point, facing component.Dir) core.Entity {
	eb := w.NewEntity()
	With(eb, w.Components.Kind, component.KindComponent{Kind: kind})
	With(eb, w.Components.Tag, component.TagComponent{Mask: kind.Tags()})
	if kind.Tags().Has(component.TagTrigger) {
		With(eb, w.Components.Orientation, component.OrientationComponent{Dir: facing})
	}
	return WithPosition(eb, pos).Build()
}

// SpawnTagged builds an entity with an explicit tag set and no kind
func (w *World) SpawnTagged(tags component.TagMask, pos core.Point) core.Entity {
	eb := w.NewEntity()
	With(eb, w.Components.Tag, component.TagComponent{Mask: tags})
	return WithPosition(eb, pos).Build()
}
