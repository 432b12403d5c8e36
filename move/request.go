package move

import "github.com/lixenwraith/wrapbox/core"

// Participant is an entity named by a request together with where it stood at generation time
type Participant struct {
	Entity   core.Entity
	Snapshot core.Point
}

// Request asks the resolver to push its participants by Delta
type Request struct {
	Participants []Participant
	Cause        Cause
	Delta        core.Delta
}

// Locator reports the live position of an entity
type Locator func(core.Entity) (core.Point, bool)

// KeepStillValid drops participants an earlier request already carried off the trigger cell
// A participant survives when both its snapshot and its live position equal the origin
// User requests are never filtered
func (r *Request) KeepStillValid(live Locator) {
	if r.Cause.IsUser() {
		return
	}
	kept := r.Participants[:0]
	for _, p := range r.Participants {
		if p.Snapshot != r.Cause.Origin {
			continue
		}
		if pos, ok := live(p.Entity); ok && pos != r.Cause.Origin {
			continue
		}
		kept = append(kept, p)
	}
	r.Participants = kept
}
