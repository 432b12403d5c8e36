package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wrapbox/component"
)

// KeyTable maps keys to intents
type KeyTable struct {
	// Special keys (Ctrl+*, arrows, Esc)
	SpecialKeys map[tcell.Key]Intent

	// Printable rune bindings
	Runes map[rune]Intent
}

func move(d component.Dir) Intent {
	return Intent{Type: IntentMove, Dir: d}
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]Intent{
			tcell.KeyCtrlQ:      {Type: IntentQuit},
			tcell.KeyCtrlC:      {Type: IntentQuit},
			tcell.KeyEscape:     {Type: IntentQuit},
			tcell.KeyCtrlS:      {Type: IntentToggleMute},
			tcell.KeyCtrlZ:      {Type: IntentUndo},
			tcell.KeyBackspace:  {Type: IntentUndo},
			tcell.KeyBackspace2: {Type: IntentUndo},
			tcell.KeyLeft:       move(component.DirLeft),
			tcell.KeyRight:      move(component.DirRight),
			tcell.KeyUp:         move(component.DirUp),
			tcell.KeyDown:       move(component.DirDown),
		},
		Runes: map[rune]Intent{
			'h': move(component.DirLeft),
			'l': move(component.DirRight),
			'k': move(component.DirUp),
			'j': move(component.DirDown),
			'u': {Type: IntentUndo},
			'.': {Type: IntentIdle},
			' ': {Type: IntentIdle},
			'm': {Type: IntentToggleMute},
			'q': {Type: IntentQuit},
		},
	}
}

// Lookup decodes a key press; unbound keys yield IntentNone
func (kt *KeyTable) Lookup(key tcell.Key, ch rune) Intent {
	if key == tcell.KeyRune {
		return kt.Runes[ch]
	}
	return kt.SpecialKeys[key]
}

// Decode translates a terminal event into an intent
func (kt *KeyTable) Decode(ev tcell.Event) Intent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return kt.Lookup(ev.Key(), ev.Rune())
	case *tcell.EventResize:
		return Intent{Type: IntentResize}
	}
	return Intent{}
}
