package system

import "github.com/lixenwraith/wrapbox/engine"

// RegisterAll adds the movement pipeline to a world in its fixed tick order
func RegisterAll(world *engine.World) {
	world.AddSystem(NewPlayerSystem(world))
	world.AddSystem(NewFunnelSystem(world))
	world.AddSystem(NewResolveSystem(world))
	world.AddSystem(NewUndoSystem(world))
}
