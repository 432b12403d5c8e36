package engine

import "github.com/lixenwraith/wrapbox/component"

// ComponentStore provides cached pointers to the typed component stores
// Initialized once per system; pointers remain valid for application lifetime
type ComponentStore struct {
	Tag         *Store[component.TagComponent]
	Orientation *Store[component.OrientationComponent]
	Kind        *Store[component.KindComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Tag:         NewStore[component.TagComponent](),
		Orientation: NewStore[component.OrientationComponent](),
		Kind:        NewStore[component.KindComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (c ComponentStore) all() []AnyStore {
	return []AnyStore{c.Tag, c.Orientation, c.Kind}
}
