package system

import (
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/engine"
	"github.com/lixenwraith/wrapbox/move"
	"github.com/lixenwraith/wrapbox/parameter"
	"github.com/lixenwraith/wrapbox/status"
)

// ResolveSystem drains the request queue in generation order and applies push chains
// Each request sees the positions left by the requests before it
type ResolveSystem struct {
	engine.SystemBase

	statRecords *atomic.Int64
	statBlocked *atomic.Int64
	statMoved   *atomic.Int64
	statDepth   *atomic.Int64
	statCause   *status.AtomicString
}

func NewResolveSystem(world *engine.World) engine.System {
	s := &ResolveSystem{SystemBase: engine.NewSystemBase(world)}
	reg := s.Resource.Status
	s.statRecords = reg.Ints.Get(status.KeyRecords)
	s.statBlocked = reg.Ints.Get(status.KeyBlocked)
	s.statMoved = reg.Ints.Get(status.KeyMoved)
	s.statDepth = reg.Ints.Get(status.KeyHistoryDepth)
	s.statCause = reg.Strings.Get(status.KeyLastCause)
	return s
}

func (s *ResolveSystem) Name() string {
	return "resolve"
}

func (s *ResolveSystem) Priority() int {
	return parameter.PriorityResolve
}

func (s *ResolveSystem) Update() {
	requests := s.Resource.Queue.Drain()
	for i := range requests {
		rec := s.resolve(&requests[i])

		s.Resource.History.Append(rec)
		s.Resource.Tick.Records = append(s.Resource.Tick.Records, rec)

		s.statRecords.Add(1)
		s.statMoved.Add(int64(len(rec.Entities)))
		if rec.Empty() {
			s.statBlocked.Add(1)
		}
		s.statCause.Store(rec.Cause.String())

		s.Resource.Logger.Debug("resolved move",
			zap.Int64("tick", s.Resource.Tick.Number),
			zap.Stringer("cause", rec.Cause),
			zap.Int("dx", rec.Delta.DX),
			zap.Int("dy", rec.Delta.DY),
			zap.Uint64s("entities", entityIDs(rec.Entities)),
		)
	}
	s.statDepth.Store(int64(s.Resource.History.Len()))
}

// resolve runs filter, chain discovery and apply for a single request
func (s *ResolveSystem) resolve(req *move.Request) move.Record {
	req.KeepStillValid(s.World.Positions.GetPosition)

	// Rebuilt per request: earlier requests this tick may have moved things
	movables := s.World.MovableIndex()
	blockers := s.World.BlockerCells()

	toMove := newEntitySet()
	for _, p := range req.Participants {
		start := s.World.MustMovablePosition(p.Entity)
		chain, landing := s.walkChain(p.Entity, start, req.Delta, movables)
		if _, blocked := blockers[landing]; blocked {
			continue
		}
		toMove.addAll(chain)
	}

	grid := s.Resource.Grid
	for _, e := range toMove.order {
		pos := s.World.MustMovablePosition(e)
		s.World.Positions.SetPosition(e, grid.Wrap(pos, req.Delta))
	}

	return move.Record{
		Entities: toMove.order,
		Cause:    req.Cause,
		Delta:    req.Delta,
	}
}

// walkChain collects the participant and the consecutive movables ahead of it, returning the first cell past them
// A chain that wraps back onto a visited cell stops there; the landing cell then holds a movable, never a blocker
func (s *ResolveSystem) walkChain(e core.Entity, start core.Point, delta core.Delta, movables map[core.Point]core.Entity) ([]core.Entity, core.Point) {
	grid := s.Resource.Grid
	chain := []core.Entity{e}
	visited := map[core.Point]struct{}{start: {}}
	cell := grid.Wrap(start, delta)
	for {
		next, ok := movables[cell]
		if !ok {
			break
		}
		if _, seen := visited[cell]; seen {
			break
		}
		visited[cell] = struct{}{}
		chain = append(chain, next)
		cell = grid.Wrap(cell, delta)
	}
	return chain, cell
}

// entitySet is an insertion-ordered set so records never depend on map iteration
type entitySet struct {
	order []core.Entity
	index map[core.Entity]struct{}
}

func newEntitySet() *entitySet {
	return &entitySet{index: make(map[core.Entity]struct{})}
}

func (s *entitySet) addAll(es []core.Entity) {
	for _, e := range es {
		if _, ok := s.index[e]; ok {
			continue
		}
		s.index[e] = struct{}{}
		s.order = append(s.order, e)
	}
}

func entityIDs(es []core.Entity) []uint64 {
	ids := make([]uint64, len(es))
	for i, e := range es {
		ids[i] = uint64(e)
	}
	return ids
}
