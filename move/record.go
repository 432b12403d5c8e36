package move

import "github.com/lixenwraith/wrapbox/core"

// Record is what a request actually did: the entities it moved, in discovery order
type Record struct {
	Entities []core.Entity
	Cause    Cause
	Delta    core.Delta
}

// UndoDelta is the displacement that reverts this record
func (r Record) UndoDelta() core.Delta {
	return r.Delta.Neg()
}

// Empty reports whether resolution vetoed every participant
func (r Record) Empty() bool {
	return len(r.Entities) == 0
}
