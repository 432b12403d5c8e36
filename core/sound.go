package core

// SoundType represents different sound cues
type SoundType int

const (
	SoundPush    SoundType = iota // Player move that displaced something
	SoundWhoosh                   // Funnel carried an entity
	SoundBlocked                  // Player move vetoed by an obstacle
	SoundUndo                     // Tick reverted
	SoundTypeCount
)
