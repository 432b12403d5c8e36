package audio

import (
	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/engine"
)

// CuesFor maps a tick report to the sounds it should trigger, each at most once, in first-seen order
func CuesFor(report engine.TickReport) []core.SoundType {
	var cues []core.SoundType
	var seen [core.SoundTypeCount]bool
	add := func(st core.SoundType) {
		if !seen[st] {
			seen[st] = true
			cues = append(cues, st)
		}
	}

	for _, rec := range report.Records {
		switch {
		case rec.Cause.IsUser() && rec.Empty():
			add(core.SoundBlocked)
		case rec.Cause.IsUser():
			add(core.SoundPush)
		case !rec.Empty():
			add(core.SoundWhoosh)
		}
	}
	if report.Undone != nil {
		add(core.SoundUndo)
	}
	return cues
}
