package engine

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/lixenwraith/wrapbox/core"
)

// InvariantError reports bookkeeping drift between the stores and queued or recorded moves
// It is raised with panic, never returned: there is no sane way to continue the tick
type InvariantError struct {
	Entity core.Entity
	err    error
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violated: entity %d: %v", e.Entity, e.err)
}

// Cause exposes the stack-carrying error for errors.Cause
func (e *InvariantError) Cause() error {
	return e.err
}

func (e *InvariantError) Unwrap() error {
	return e.err
}

// Format prints the origin stack with %+v
func (e *InvariantError) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') {
		fmt.Fprintf(s, "invariant violated: entity %d: %+v", e.Entity, e.err)
		return
	}
	fmt.Fprint(s, e.Error())
}

func panicInvariant(e core.Entity, format string, args ...any) {
	panic(&InvariantError{Entity: e, err: errors.Errorf(format, args...)})
}
