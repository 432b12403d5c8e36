package system

import (
	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/engine"
	"github.com/lixenwraith/wrapbox/move"
	"github.com/lixenwraith/wrapbox/parameter"
)

// PlayerSystem turns a directional intent into one request covering every player-controlled entity
type PlayerSystem struct {
	engine.SystemBase
}

func NewPlayerSystem(world *engine.World) engine.System {
	return &PlayerSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *PlayerSystem) Name() string {
	return "player"
}

func (s *PlayerSystem) Priority() int {
	return parameter.PriorityPlayer
}

func (s *PlayerSystem) Update() {
	in := s.Resource.Input
	if !in.Move {
		return
	}

	players := s.World.EntitiesWith(component.TagPlayer)
	participants := make([]move.Participant, 0, len(players))
	for _, e := range players {
		pos, ok := s.World.Positions.GetPosition(e)
		if !ok {
			continue
		}
		participants = append(participants, move.Participant{Entity: e, Snapshot: pos})
	}

	s.Resource.Queue.Push(move.Request{
		Participants: participants,
		Cause:        move.UserMove(),
		Delta:        in.Dir.Delta(),
	})
}
