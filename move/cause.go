package move

import (
	"fmt"

	"github.com/lixenwraith/wrapbox/core"
)

// CauseKind discriminates where a move request came from
type CauseKind uint8

const (
	CauseUser        CauseKind = iota // Player intent
	CauseEnvironment                  // Funnel trigger
)

// Cause is UserMove or EnvironmentMove(origin)
// Origin is meaningful only for environment moves and is the trigger cell, not the trigger entity
type Cause struct {
	Kind   CauseKind
	Origin core.Point
}

// UserMove is the cause of every player-generated request
func UserMove() Cause {
	return Cause{Kind: CauseUser}
}

// EnvironmentMove is the cause of a request generated by the trigger at origin
func EnvironmentMove(origin core.Point) Cause {
	return Cause{Kind: CauseEnvironment, Origin: origin}
}

// IsUser reports whether the cause opens a new history tick
func (c Cause) IsUser() bool {
	return c.Kind == CauseUser
}

func (c Cause) String() string {
	if c.IsUser() {
		return "user"
	}
	return fmt.Sprintf("env(%d,%d)", c.Origin.X, c.Origin.Y)
}
