package engine

import (
	"slices"
	"sync"

	"github.com/lixenwraith/wrapbox/core"
)

// PositionStore maps entities to grid cells and keeps a cell index for lookups
// Several entities may share a cell (a box standing on a funnel); order within a cell is insertion order
type PositionStore struct {
	mu        sync.RWMutex
	positions map[core.Entity]core.Point
	entities  []core.Entity
	cells     map[core.Point][]core.Entity
}

// NewPositionStore creates an empty position store
func NewPositionStore() *PositionStore {
	return &PositionStore{
		positions: make(map[core.Entity]core.Point),
		entities:  make([]core.Entity, 0, 64),
		cells:     make(map[core.Point][]core.Entity),
	}
}

// SetPosition inserts or updates an entity's position
func (p *PositionStore) SetPosition(e core.Entity, pos core.Point) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if old, exists := p.positions[e]; exists {
		if old == pos {
			return
		}
		p.unindex(e, old)
	} else {
		p.entities = append(p.entities, e)
	}
	p.positions[e] = pos
	p.cells[pos] = append(p.cells[pos], e)
}

// GetPosition retrieves an entity's position
func (p *PositionStore) GetPosition(e core.Entity) (core.Point, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	pos, ok := p.positions[e]
	return pos, ok
}

// GetAllEntityAt returns a copy of the entities on a cell, nil if empty
func (p *PositionStore) GetAllEntityAt(pos core.Point) []core.Entity {
	p.mu.RLock()
	defer p.mu.RUnlock()

	view := p.cells[pos]
	if len(view) == 0 {
		return nil
	}
	result := make([]core.Entity, len(view))
	copy(result, view)
	return result
}

// HasAnyEntityAt returns true if any entity occupies the cell
func (p *PositionStore) HasAnyEntityAt(pos core.Point) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.cells[pos]) > 0
}

// RemoveEntity deletes an entity from the store and the cell index
func (p *PositionStore) RemoveEntity(e core.Entity) {
	p.mu.Lock()
	defer p.mu.Unlock()

	pos, exists := p.positions[e]
	if !exists {
		return
	}
	p.unindex(e, pos)
	delete(p.positions, e)
	if i := slices.Index(p.entities, e); i >= 0 {
		p.entities = slices.Delete(p.entities, i, i+1)
	}
}

// HasEntity checks if entity has a position
func (p *PositionStore) HasEntity(e core.Entity) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.positions[e]
	return ok
}

// GetAllEntities returns positioned entities in insertion order
func (p *PositionStore) GetAllEntities() []core.Entity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	result := make([]core.Entity, len(p.entities))
	copy(result, p.entities)
	return result
}

// Snapshot returns a copy of every entity's position, for renderers and tests
func (p *PositionStore) Snapshot() map[core.Entity]core.Point {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make(map[core.Entity]core.Point, len(p.positions))
	for e, pos := range p.positions {
		out[e] = pos
	}
	return out
}

// CountEntities returns number of positioned entities
func (p *PositionStore) CountEntities() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entities)
}

// ClearAllComponents removes every position
func (p *PositionStore) ClearAllComponents() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.positions = make(map[core.Entity]core.Point)
	p.entities = make([]core.Entity, 0, 64)
	p.cells = make(map[core.Point][]core.Entity)
}

// unindex drops e from the cell list at pos, caller holds the lock
func (p *PositionStore) unindex(e core.Entity, pos core.Point) {
	list := p.cells[pos]
	if i := slices.Index(list, e); i >= 0 {
		list = slices.Delete(list, i, i+1)
	}
	if len(list) == 0 {
		delete(p.cells, pos)
		return
	}
	p.cells[pos] = list
}
