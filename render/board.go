package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/engine"
)

// CellWidth is the number of terminal columns per grid cell, keeping cells roughly square
const CellWidth = 2

// Glyph is one drawn grid cell
type Glyph struct {
	Runes [CellWidth]rune
	Style tcell.Style
}

// layer ranks what shows on a shared cell: movables over blockers over triggers
type layer uint8

const (
	layerFloor layer = iota
	layerTrigger
	layerBlocker
	layerMovable
)

var arrows = [...]rune{
	component.DirLeft:  '←',
	component.DirRight: '→',
	component.DirUp:    '↑',
	component.DirDown:  '↓',
}

var base = tcell.StyleDefault.Background(RgbBackground)

// BoardRenderer draws the grid with y growing upward, so row 0 of the board is the bottom line
type BoardRenderer struct {
	OriginX, OriginY int
}

// Size returns the terminal footprint of a grid
func (r *BoardRenderer) Size(g core.Grid) (cols, rows int) {
	return g.Width * CellWidth, g.Height
}

// ScreenPos maps a grid point to the terminal cell of its first column
func (r *BoardRenderer) ScreenPos(g core.Grid, p core.Point) (x, y int) {
	return r.OriginX + p.X*CellWidth, r.OriginY + (g.Height - 1 - p.Y)
}

// Draw paints every grid cell, clipped to the canvas
func (r *BoardRenderer) Draw(c Canvas, w *engine.World) {
	grid := w.Resource.Grid
	cw, ch := c.Size()
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := core.Point{X: x, Y: y}
			sx, sy := r.ScreenPos(grid, p)
			if sy < 0 || sy >= ch {
				continue
			}
			g := GlyphAt(w, p)
			for i, ru := range g.Runes {
				if sx+i >= 0 && sx+i < cw {
					c.SetContent(sx+i, sy, ru, nil, g.Style)
				}
			}
		}
	}
}

// GlyphAt picks the glyph for a single cell from its occupants
func GlyphAt(w *engine.World, p core.Point) Glyph {
	top := core.Entity(0)
	topLayer := layerFloor
	var funnel *component.OrientationComponent

	// Later-spawned occupants win ties, matching chain resolution
	for _, e := range w.Positions.GetAllEntityAt(p) {
		tags := w.Tags(e)
		l := layerOf(tags)
		if l == layerTrigger && funnel == nil {
			if o, ok := w.Components.Orientation.GetComponent(e); ok {
				funnel = &o
			}
		}
		if l >= topLayer && l != layerFloor {
			top, topLayer = e, l
		}
	}

	bg := base
	if funnel != nil && topLayer != layerTrigger {
		bg = bg.Background(RgbFunnelBg)
	}

	switch topLayer {
	case layerMovable:
		tags := w.Tags(top)
		switch {
		case tags.Has(component.TagImmovable):
			return Glyph{Runes: [CellWidth]rune{'▓', '▓'}, Style: bg.Foreground(RgbHybrid)}
		case tags.Has(component.TagPlayer):
			return Glyph{Runes: [CellWidth]rune{'@', ' '}, Style: bg.Foreground(RgbPlayer).Bold(true)}
		default:
			return Glyph{Runes: [CellWidth]rune{'[', ']'}, Style: bg.Foreground(RgbBox)}
		}
	case layerBlocker:
		return Glyph{Runes: [CellWidth]rune{'█', '█'}, Style: bg.Foreground(RgbWall)}
	case layerTrigger:
		ru := '•'
		if funnel != nil && int(funnel.Dir) < len(arrows) {
			ru = arrows[funnel.Dir]
		}
		return Glyph{Runes: [CellWidth]rune{ru, ' '}, Style: bg.Foreground(RgbFunnel)}
	}
	return Glyph{Runes: [CellWidth]rune{'·', ' '}, Style: bg.Foreground(RgbFloorDot)}
}

func layerOf(tags component.TagMask) layer {
	switch {
	case tags.Has(component.TagMovable):
		return layerMovable
	case tags.Blocks():
		return layerBlocker
	case tags.Has(component.TagTrigger):
		return layerTrigger
	}
	return layerFloor
}
