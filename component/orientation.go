package component

import (
	"fmt"

	"github.com/lixenwraith/wrapbox/core"
)

// Dir is one of the four grid directions, y grows upward
type Dir uint8

const (
	DirLeft Dir = iota
	DirRight
	DirUp
	DirDown
)

var dirNames = [...]string{"left", "right", "up", "down"}

// Delta converts the direction to its unit displacement
func (d Dir) Delta() core.Delta {
	switch d {
	case DirLeft:
		return core.Delta{DX: -1}
	case DirRight:
		return core.Delta{DX: 1}
	case DirUp:
		return core.Delta{DY: 1}
	case DirDown:
		return core.Delta{DY: -1}
	}
	return core.Delta{}
}

func (d Dir) String() string {
	if int(d) < len(dirNames) {
		return dirNames[d]
	}
	return fmt.Sprintf("dir(%d)", uint8(d))
}

// ParseDir maps a lowercase direction name back to a Dir
func ParseDir(s string) (Dir, error) {
	for i, name := range dirNames {
		if name == s {
			return Dir(i), nil
		}
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// OrientationComponent gives a trigger its push direction
type OrientationComponent struct {
	Dir Dir
}
