package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/move"
	"github.com/lixenwraith/wrapbox/status"
)

// Input is the decoded intent delivered for one tick
type Input struct {
	Dir  component.Dir
	Move bool // Dir is meaningful only when set
	Undo bool
}

// MoveInput is a tick with a directional intent
func MoveInput(d component.Dir) Input {
	return Input{Dir: d, Move: true}
}

// UndoInput is a tick with only the undo signal
func UndoInput() Input {
	return Input{Undo: true}
}

// TickReport describes what one step did, for audio and status collaborators
type TickReport struct {
	Number int64

	// Records appended to history this tick, in resolution order
	Records []move.Record

	// UndoRequested is set when the input carried the undo signal
	UndoRequested bool
	// Undone holds the reverted tick group, nil when history was empty
	Undone []move.Record
}

// Game drives the world one tick at a time
type Game struct {
	World *World

	tick  int64
	ticks *atomic.Int64
}

// NewGame wraps a populated world whose systems are registered
func NewGame(w *World) *Game {
	return &Game{
		World: w,
		ticks: w.Resource.Status.Ints.Get(status.KeyTicks),
	}
}

// Step latches in, runs every system in priority order and returns the tick report
// Input is cleared afterwards so a held key never repeats
func (g *Game) Step(in Input) TickReport {
	w := g.World
	var report TickReport
	w.RunSafe(func() {
		g.tick++
		g.ticks.Add(1)
		*w.Resource.Input = in
		*w.Resource.Tick = TickReport{Number: g.tick, UndoRequested: in.Undo}

		w.UpdateLocked()

		*w.Resource.Input = Input{}
		report = *w.Resource.Tick
	})
	return report
}

// TickNumber returns the number of completed steps
func (g *Game) TickNumber() int64 {
	return g.tick
}
