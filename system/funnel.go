package system

import (
	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/engine"
	"github.com/lixenwraith/wrapbox/move"
	"github.com/lixenwraith/wrapbox/parameter"
)

// FunnelSystem emits one environment request per movable standing on a trigger
// It reads positions as left by the previous tick; resolution happens later
type FunnelSystem struct {
	engine.SystemBase
}

func NewFunnelSystem(world *engine.World) engine.System {
	return &FunnelSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *FunnelSystem) Name() string {
	return "funnel"
}

func (s *FunnelSystem) Priority() int {
	return parameter.PriorityFunnel
}

func (s *FunnelSystem) Update() {
	movables := s.World.EntitiesWith(component.TagMovable)
	if len(movables) == 0 {
		return
	}

	for _, trigger := range s.World.EntitiesWith(component.TagTrigger) {
		origin, ok := s.World.Positions.GetPosition(trigger)
		if !ok {
			continue
		}
		orientation, ok := s.Component.Orientation.GetComponent(trigger)
		if !ok {
			continue
		}

		for _, e := range movables {
			pos, ok := s.World.Positions.GetPosition(e)
			if !ok || pos != origin {
				continue
			}
			s.Resource.Queue.Push(move.Request{
				Participants: []move.Participant{{Entity: e, Snapshot: pos}},
				Cause:        move.EnvironmentMove(origin),
				Delta:        orientation.Dir.Delta(),
			})
		}
	}
}
