package component

import "strings"

// TagMask records the capabilities an entity carries
type TagMask uint8

const (
	TagMovable TagMask = 1 << iota
	TagImmovable
	TagPlayer  // Driven by directional intents
	TagTrigger // Pushes whatever movable sits on its cell

	TagNone TagMask = 0
)

// Has checks if every flag in want is set
func (m TagMask) Has(want TagMask) bool {
	return m&want == want
}

// Any checks if at least one flag in want is set
func (m TagMask) Any(want TagMask) bool {
	return m&want != 0
}

// Blocks reports whether the entity terminates a push chain
// An entity tagged both Movable and Immovable chains rather than blocks
func (m TagMask) Blocks() bool {
	return m.Has(TagImmovable) && !m.Has(TagMovable)
}

func (m TagMask) String() string {
	if m == TagNone {
		return "none"
	}
	var parts []string
	if m.Has(TagMovable) {
		parts = append(parts, "movable")
	}
	if m.Has(TagImmovable) {
		parts = append(parts, "immovable")
	}
	if m.Has(TagPlayer) {
		parts = append(parts, "player")
	}
	if m.Has(TagTrigger) {
		parts = append(parts, "trigger")
	}
	return strings.Join(parts, "|")
}

// TagComponent is the tag side table entry of an entity
type TagComponent struct {
	Mask TagMask
}
