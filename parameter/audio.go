package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive cues of the same type
	MinSoundGap = 50 * time.Millisecond
)

// Push Sound
const (
	PushSoundDuration = 60 * time.Millisecond
	PushSoundAttack   = 2 * time.Millisecond
	PushSoundRelease  = 40 * time.Millisecond
)

// Whoosh Sound
const (
	WhooshSoundDuration = 220 * time.Millisecond
	WhooshSoundAttack   = 100 * time.Millisecond
	WhooshSoundRelease  = 110 * time.Millisecond
)

// Blocked Sound
const (
	BlockedSoundDuration = 80 * time.Millisecond
	BlockedSoundAttack   = 5 * time.Millisecond
	BlockedSoundRelease  = 20 * time.Millisecond
)

// Undo Sound
const (
	UndoSoundNote1Duration = 70 * time.Millisecond
	UndoSoundNote2Duration = 110 * time.Millisecond
	UndoSoundAttack        = 5 * time.Millisecond
	UndoSoundNote1Release  = 40 * time.Millisecond
	UndoSoundNote2Release  = 90 * time.Millisecond
)
