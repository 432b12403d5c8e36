package render

import (
	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/engine"
)

// HelpText is shown under the status bar
const HelpText = "hjkl/arrows move  u undo  . wait  m mute  q quit"

// Screen is a Canvas that is cleared and flushed once per frame
type Screen interface {
	Canvas
	Clear()
	Show()
}

// Renderer composes the board, status bar and help line into one frame
type Renderer struct {
	Board  BoardRenderer
	Status StatusBar
	Label  string
}

// NewRenderer lays out a frame for grid with a one-cell margin
func NewRenderer(grid core.Grid, label string) *Renderer {
	if label == "" {
		label = "wrapbox"
	}
	return &Renderer{
		Board:  BoardRenderer{OriginX: 1, OriginY: 1},
		Status: StatusBar{Row: grid.Height + 2},
		Label:  label,
	}
}

// Frame draws the full frame from live positions and the last tick report
func (r *Renderer) Frame(s Screen, w *engine.World, last engine.TickReport) {
	s.Clear()
	r.Board.Draw(s, w)
	r.Status.Draw(s, r.Label, w.Resource.Status.Line(), Blocked(last))
	DrawText(s, 0, r.Status.Row+1, HelpText, base.Foreground(RgbStatusDim))
	s.Show()
}

// Blocked reports whether the tick's user move was vetoed entirely
func Blocked(report engine.TickReport) bool {
	for _, rec := range report.Records {
		if rec.Cause.IsUser() && rec.Empty() {
			return true
		}
	}
	return false
}
