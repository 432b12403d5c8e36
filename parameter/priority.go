package parameter

// System Execution Priorities (lower runs first)
// Generators before resolver, undo after resolution
const (
	PriorityPlayer  = 10
	PriorityFunnel  = 20 // After player so queue order is player first
	PriorityResolve = 30
	PriorityUndo    = 40
)
