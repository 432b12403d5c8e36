package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/wrapbox/engine"
	"github.com/lixenwraith/wrapbox/parameter"
	"github.com/lixenwraith/wrapbox/status"
)

// UndoSystem reverts the most recent history tick when the undo signal is latched
// Records replay last-applied-first with the negated delta; nothing is re-validated
type UndoSystem struct {
	engine.SystemBase

	statUndos *atomic.Int64
	statDepth *atomic.Int64
}

func NewUndoSystem(world *engine.World) engine.System {
	s := &UndoSystem{SystemBase: engine.NewSystemBase(world)}
	s.statUndos = s.Resource.Status.Ints.Get(status.KeyUndos)
	s.statDepth = s.Resource.Status.Ints.Get(status.KeyHistoryDepth)
	return s
}

func (s *UndoSystem) Name() string {
	return "undo"
}

func (s *UndoSystem) Priority() int {
	return parameter.PriorityUndo
}

func (s *UndoSystem) Update() {
	if !s.Resource.Input.Undo {
		return
	}

	tick, ok := s.Resource.History.Pop()
	if !ok {
		return
	}

	grid := s.Resource.Grid
	moved := 0
	for i := len(tick) - 1; i >= 0; i-- {
		rec := tick[i]
		back := rec.UndoDelta()
		for _, e := range rec.Entities {
			pos := s.World.MustMovablePosition(e)
			s.World.Positions.SetPosition(e, grid.Wrap(pos, back))
		}
		moved += len(rec.Entities)
	}

	s.Resource.Tick.Undone = tick
	s.statUndos.Add(1)
	s.statDepth.Store(int64(s.Resource.History.Len()))

	s.Resource.Logger.Debug("undo",
		zap.Int64("tick", s.Resource.Tick.Number),
		zap.Int("records", len(tick)),
		zap.Int("entities", moved),
		zap.Int("depth", s.Resource.History.Len()),
	)
}
