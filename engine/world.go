package engine

import (
	"sync"

	"go.uber.org/zap"

	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/core"
)

// World contains all entities, their components and the simulation resources
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Resource   Resource
	Components ComponentStore
	Positions  *PositionStore

	systems     []System
	updateMutex sync.Mutex
}

// NewWorld creates an empty world over a toroidal grid
func NewWorld(grid core.Grid) *World {
	return &World{
		nextEntityID: 1,
		Resource:     newResource(grid),
		Components:   newComponentStore(),
		Positions:    NewPositionStore(),
		systems:      make([]System, 0),
	}
}

// SetLogger replaces the no-op logger; call before systems are constructed
func (w *World) SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	w.Resource.Logger = l
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// Clear removes all entities, components, pending requests and history
func (w *World) Clear() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextEntityID = 1
	for _, s := range w.Components.all() {
		s.ClearAllComponents()
	}
	w.Positions.ClearAllComponents()
	w.Resource.Queue.Clear()
	w.Resource.History.Clear()
}

// AddSystem adds a system to the world and sorts by priority
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)

	// Stable bubble sort, small N; equal priorities keep registration order
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// RunSafe executes a function while holding the world's update lock
func (w *World) RunSafe(fn func()) {
	w.updateMutex.Lock()
	defer w.updateMutex.Unlock()
	fn()
}

// Update runs all systems sequentially
func (w *World) Update() {
	w.RunSafe(w.UpdateLocked)
}

// UpdateLocked runs all systems assuming the caller already holds updateMutex
func (w *World) UpdateLocked() {
	for _, system := range w.Systems() {
		system.Update()
	}
}

// Tags returns the capability set of an entity, TagNone if untagged
func (w *World) Tags(e core.Entity) component.TagMask {
	tag, _ := w.Components.Tag.GetComponent(e)
	return tag.Mask
}
