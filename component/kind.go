package component

import "fmt"

// Kind is the level-authoring classification of an entity
// Simulation logic never branches on it, only on tags
type Kind uint8

const (
	KindPlayer Kind = iota
	KindBox
	KindWall
	KindFunnel
	KindCount
)

var kindNames = [...]string{"player", "box", "wall", "funnel"}

// Tags returns the capability set a kind spawns with
func (k Kind) Tags() TagMask {
	switch k {
	case KindPlayer:
		return TagMovable | TagPlayer
	case KindBox:
		return TagMovable
	case KindWall:
		return TagImmovable
	case KindFunnel:
		return TagTrigger
	}
	return TagNone
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// ParseKind maps a kind name back to a Kind
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown kind %q", s)
}

// KindComponent is consumed by renderers to pick a glyph
type KindComponent struct {
	Kind Kind
}
