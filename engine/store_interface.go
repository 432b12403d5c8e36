package engine

import "github.com/lixenwraith/wrapbox/core"

// AnyStore provides type-erased operations for lifecycle management
// World manages every store uniformly through it on Clear
type AnyStore interface {
	RemoveEntity(e core.Entity)
	HasEntity(e core.Entity) bool
	CountEntities() int
	ClearAllComponents()
}
