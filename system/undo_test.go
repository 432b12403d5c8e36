package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wrapbox/component"
	"github.com/lixenwraith/wrapbox/core"
	"github.com/lixenwraith/wrapbox/engine"
	"github.com/lixenwraith/wrapbox/move"
)

// cascadeBoard has a player and two boxes already resting on funnels
func cascadeBoard(t *testing.T) (*engine.World, *engine.Game, [3]core.Entity) {
	t.Helper()
	w, g := newTestGame(t, 10, 10)
	funnel(w, 2, 2, component.DirRight)
	funnel(w, 7, 7, component.DirUp)
	p := player(w, 0, 0)
	a := box(w, 2, 2)
	b := box(w, 7, 7)
	return w, g, [3]core.Entity{p, a, b}
}

func TestStepGroupsCascadeUnderUserTick(t *testing.T) {
	w, g, es := cascadeBoard(t)
	p, a, b := es[0], es[1], es[2]

	report := g.Step(engine.MoveInput(component.DirRight))

	assert.Equal(t, int64(1), report.Number)
	require.Len(t, report.Records, 3)
	assert.Equal(t, move.UserMove(), report.Records[0].Cause)
	assert.Equal(t, move.EnvironmentMove(pt(2, 2)), report.Records[1].Cause)
	assert.Equal(t, move.EnvironmentMove(pt(7, 7)), report.Records[2].Cause)

	ticks := w.Resource.History.Ticks()
	require.Len(t, ticks, 1)
	assert.Equal(t, report.Records, ticks[0])

	assert.Equal(t, pt(1, 0), posOf(t, w, p))
	assert.Equal(t, pt(3, 2), posOf(t, w, a))
	assert.Equal(t, pt(7, 8), posOf(t, w, b))
}

func TestStepIdleCascadeOpensTickOnEmptyHistory(t *testing.T) {
	w, g, _ := cascadeBoard(t)

	report := g.Step(engine.Input{})

	require.Len(t, report.Records, 2)
	ticks := w.Resource.History.Ticks()
	require.Len(t, ticks, 1)
	assert.Len(t, ticks[0], 2)
}

func TestUndoRestoresPreTickPositions(t *testing.T) {
	w, g, es := cascadeBoard(t)
	before := map[core.Entity]core.Point{}
	for _, e := range es {
		before[e] = posOf(t, w, e)
	}

	g.Step(engine.MoveInput(component.DirRight))
	report := g.Step(engine.UndoInput())

	assert.True(t, report.UndoRequested)
	require.Len(t, report.Undone, 3)
	for _, e := range es {
		assert.Equal(t, before[e], posOf(t, w, e), "entity %d", e)
	}
	assert.Equal(t, 0, w.Resource.History.Len())
	assert.Equal(t, int64(1), w.Resource.Status.Ints.Get("undos").Load())
}

func TestUndoPopsExactlyOneTick(t *testing.T) {
	w, g := newTestGame(t, 10, 10)
	p := player(w, 4, 4)

	g.Step(engine.MoveInput(component.DirUp))
	g.Step(engine.MoveInput(component.DirUp))
	require.Equal(t, 2, w.Resource.History.Len())

	g.Step(engine.UndoInput())
	assert.Equal(t, pt(4, 5), posOf(t, w, p))
	assert.Equal(t, 1, w.Resource.History.Len())

	g.Step(engine.UndoInput())
	assert.Equal(t, pt(4, 4), posOf(t, w, p))
	assert.Equal(t, 0, w.Resource.History.Len())
}

func TestUndoOnEmptyHistoryIsNoop(t *testing.T) {
	w, g := newTestGame(t, 10, 10)
	a := box(w, 3, 3)

	report := g.Step(engine.UndoInput())

	assert.True(t, report.UndoRequested)
	assert.Nil(t, report.Undone)
	assert.Equal(t, pt(3, 3), posOf(t, w, a))
	assert.Equal(t, int64(0), w.Resource.Status.Ints.Get("undos").Load())
}

func TestUndoOfBlockedMoveChangesNothing(t *testing.T) {
	w, g := newTestGame(t, 10, 10)
	p := player(w, 4, 4)
	wall(w, 5, 4)

	g.Step(engine.MoveInput(component.DirRight))
	require.Equal(t, 1, w.Resource.History.Len())
	assert.Equal(t, pt(4, 4), posOf(t, w, p))

	report := g.Step(engine.UndoInput())
	require.Len(t, report.Undone, 1)
	assert.True(t, report.Undone[0].Empty())
	assert.Equal(t, pt(4, 4), posOf(t, w, p))
}

func TestUndoAcrossWrapEdge(t *testing.T) {
	w, g := newTestGame(t, 4, 4)
	p := player(w, 0, 3)

	g.Step(engine.MoveInput(component.DirUp))
	assert.Equal(t, pt(0, 0), posOf(t, w, p))

	g.Step(engine.UndoInput())
	assert.Equal(t, pt(0, 3), posOf(t, w, p))
}

func TestUndoTrustsRecordedEntities(t *testing.T) {
	w, g := newTestGame(t, 10, 10)
	a := box(w, 1, 1)
	w.Resource.History.Append(move.Record{
		Entities: []core.Entity{a},
		Cause:    move.UserMove(),
		Delta:    core.Delta{DX: 2},
	})

	g.Step(engine.UndoInput())
	assert.Equal(t, pt(9, 1), posOf(t, w, a))
}

func TestUndoPanicsOnUnmovableRecordedEntity(t *testing.T) {
	w, g := newTestGame(t, 10, 10)
	stone := wall(w, 1, 1)
	w.Resource.History.Append(move.Record{
		Entities: []core.Entity{stone},
		Cause:    move.UserMove(),
		Delta:    core.Delta{DX: 1},
	})

	assert.PanicsWithError(t,
		"invariant violated: entity 1: expected movable entity, has tags immovable",
		func() { g.Step(engine.UndoInput()) },
	)
}

func TestStepIsDeterministic(t *testing.T) {
	inputs := []engine.Input{
		engine.MoveInput(component.DirRight),
		engine.MoveInput(component.DirRight),
		engine.MoveInput(component.DirDown),
		engine.UndoInput(),
		engine.MoveInput(component.DirLeft),
		{},
		engine.MoveInput(component.DirUp),
	}

	run := func() ([]core.Point, [][]move.Record) {
		w, g := newTestGame(t, 6, 6)
		funnel(w, 3, 1, component.DirDown)
		funnel(w, 2, 0, component.DirLeft)
		wall(w, 5, 1)
		ents := []core.Entity{
			player(w, 1, 1),
			player(w, 4, 4),
			box(w, 2, 1),
			box(w, 3, 1),
			box(w, 0, 5),
		}
		for _, in := range inputs {
			g.Step(in)
		}
		pos := make([]core.Point, len(ents))
		for i, e := range ents {
			pos[i] = posOf(t, w, e)
		}
		return pos, w.Resource.History.Ticks()
	}

	pos1, hist1 := run()
	pos2, hist2 := run()
	assert.Equal(t, pos1, pos2)
	assert.Equal(t, hist1, hist2)
}
