package parameter

import "time"

// Simulation Timing
const (
	// TickInterval is the default simulation step
	TickInterval = 100 * time.Millisecond

	// MinTickInterval keeps the loop from spinning on a bad flag
	MinTickInterval = 10 * time.Millisecond

	// InputBufferSize is the capacity of the terminal event channel and the per-tick input queue
	InputBufferSize = 100
)

// Board Limits
const (
	// MaxGridDimension bounds level files on either axis
	MaxGridDimension = 256
)

// Logging
const (
	LogDir      = "logs"
	LogFileName = "wrapbox.log"

	// MaxLogSize triggers rotation of an existing log at startup
	MaxLogSize = 10 * 1024 * 1024
)
