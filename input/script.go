package input

import (
	"unicode"

	"github.com/pkg/errors"

	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/engine"
)

var scriptMoves = map[rune]component.Dir{
	'L': component.DirLeft,
	'R': component.DirRight,
	'U': component.DirUp,
	'D': component.DirDown,
	'h': component.DirLeft,
	'l': component.DirRight,
	'k': component.DirUp,
	'j': component.DirDown,
}

// ParseScript turns a move string into one input per tick
// L R U D or h l k j move, u undoes, . idles; whitespace is ignored
func ParseScript(script string) ([]engine.Input, error) {
	var inputs []engine.Input
	for i, ch := range script {
		if unicode.IsSpace(ch) {
			continue
		}
		if d, ok := scriptMoves[ch]; ok {
			inputs = append(inputs, engine.MoveInput(d))
			continue
		}
		switch ch {
		case 'u':
			inputs = append(inputs, engine.UndoInput())
		case '.':
			inputs = append(inputs, engine.Input{})
		default:
			return nil, errors.Errorf("script offset %d: unexpected %q", i, ch)
		}
	}
	return inputs, nil
}
