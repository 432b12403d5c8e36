package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// DrawText writes s at (x, y) clipped to the canvas width, returning the next free column
func DrawText(c Canvas, x, y int, s string, style tcell.Style) int {
	cw, ch := c.Size()
	if y < 0 || y >= ch {
		return x
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > cw {
			break
		}
		if x >= 0 {
			c.SetContent(x, y, r, nil, style)
		}
		x += w
	}
	return x
}

// ClearRow blanks a line from column x to the canvas edge
func ClearRow(c Canvas, x, y int) {
	cw, _ := c.Size()
	for ; x < cw; x++ {
		c.SetContent(x, y, ' ', nil, base)
	}
}

// StatusBar draws the metric line under the board
type StatusBar struct {
	Row int
}

// Draw renders the label and metric text on the status row
func (s *StatusBar) Draw(c Canvas, label, metrics string, blocked bool) {
	ClearRow(c, 0, s.Row)
	style := base.Foreground(RgbStatusBar).Bold(true)
	x := DrawText(c, 0, s.Row, label, style)
	if blocked {
		x = DrawText(c, x+1, s.Row, "blocked", base.Foreground(RgbBlockedMsg))
	}
	DrawText(c, x+1, s.Row, metrics, base.Foreground(RgbStatusDim))
}
