package input

import (
	"sync"

	"github.com/lixenwraith/wrapbox/engine"
	"github.com/lixenwraith/wrapbox/parameter"
)

// Buffer queues simulation intents so each tick consumes exactly one
// Presses beyond capacity are dropped rather than stalling the event goroutine
type Buffer struct {
	mu      sync.Mutex
	pending []engine.Input
	limit   int
}

// NewBuffer creates a buffer holding up to parameter.InputBufferSize inputs
func NewBuffer() *Buffer {
	return &Buffer{limit: parameter.InputBufferSize}
}

// Push converts a simulation intent to tick input; returns false if ignored or full
func (b *Buffer) Push(in Intent) bool {
	var tick engine.Input
	switch in.Type {
	case IntentMove:
		tick = engine.MoveInput(in.Dir)
	case IntentUndo:
		tick = engine.UndoInput()
	case IntentIdle:
	default:
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) >= b.limit {
		return false
	}
	b.pending = append(b.pending, tick)
	return true
}

// Take pops the oldest input, or an empty input when nothing is queued
func (b *Buffer) Take() engine.Input {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return engine.Input{}
	}
	in := b.pending[0]
	b.pending = b.pending[1:]
	return in
}

// Len returns the number of queued inputs
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.pending)
}
