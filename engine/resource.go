package engine

import (
	"go.uber.org/zap"

	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/move"
	"github.com/lixenwraith/wrapbox/status"
)

// Resource holds singleton simulation resources, created with the World and shared by all systems
type Resource struct {
	// Board dimensions, fixed for the world lifetime
	Grid core.Grid

	// Input latched for the running tick, zeroed after the tick
	Input *Input

	// Tick is rewritten at the start of every step and filled in by systems
	Tick *TickReport

	// Per-tick mailbox between generators and resolver
	Queue *move.Queue

	// Undo history grouped by tick
	History *move.History

	// Telemetry
	Status *status.Registry
	Logger *zap.Logger
}

func newResource(grid core.Grid) Resource {
	return Resource{
		Grid:    grid,
		Input:   &Input{},
		Tick:    &TickReport{},
		Queue:   move.NewQueue(),
		History: move.NewHistory(),
		Status:  status.NewRegistry(),
		Logger:  zap.NewNop(),
	}
}
