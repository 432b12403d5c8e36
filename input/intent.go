package input

import "github.com/lixenwraith/wrapbox/component"

// IntentType discriminates semantic actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	// System-level intents
	IntentQuit       // q, Esc, Ctrl+C, Ctrl+Q
	IntentToggleMute // m, Ctrl+S
	IntentResize     // Terminal resize event

	// Simulation intents
	IntentMove // h,j,k,l, arrows
	IntentUndo // u, Backspace, Ctrl+Z
	IntentIdle // ., Space: advance one tick with no intent
)

// Intent represents a decoded action
// Pure data struct with no engine dependencies
type Intent struct {
	Type IntentType
	Dir  component.Dir // Meaningful only for IntentMove
}

// Simulation reports whether the intent feeds the tick loop
func (i Intent) Simulation() bool {
	return i.Type == IntentMove || i.Type == IntentUndo || i.Type == IntentIdle
}
