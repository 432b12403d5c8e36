package system

import (
	"testing"

	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/engine"
)

func newTestGame(t *testing.T, width, height int) (*engine.World, *engine.Game) {
	t.Helper()
	w := engine.NewWorld(core.Grid{Width: width, Height: height})
	RegisterAll(w)
	return w, engine.NewGame(w)
}

func pt(x, y int) core.Point {
	return core.Point{X: x, Y: y}
}

func box(w *engine.World, x, y int) core.Entity {
	return w.SpawnKind(component.KindBox, pt(x, y), 0)
}

func wall(w *engine.World, x, y int) core.Entity {
	return w.SpawnKind(component.KindWall, pt(x, y), 0)
}

func player(w *engine.World, x, y int) core.Entity {
	return w.SpawnKind(component.KindPlayer, pt(x, y), 0)
}

func funnel(w *engine.World, x, y int, d component.Dir) core.Entity {
	return w.SpawnKind(component.KindFunnel, pt(x, y), d)
}

func posOf(t *testing.T, w *engine.World, e core.Entity) core.Point {
	t.Helper()
	p, ok := w.Positions.GetPosition(e)
	if !ok {
		t.Fatalf("entity %d has no position", e)
	}
	return p
}
