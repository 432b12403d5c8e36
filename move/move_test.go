package move

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/wrapbox/core"
)

func rec(cause Cause, entities ...core.Entity) Record {
	return Record{Entities: entities, Cause: cause, Delta: core.Delta{DX: 1}}
}

func TestKeepStillValid(t *testing.T) {
	origin := core.Point{X: 5, Y: 6}
	r := Request{
		Participants: []Participant{
			{Entity: 1, Snapshot: origin},
			{Entity: 2, Snapshot: core.Point{X: 6, Y: 6}},
			{Entity: 3, Snapshot: origin},
		},
		Cause: EnvironmentMove(origin),
	}
	r.KeepStillValid(func(core.Entity) (core.Point, bool) { return origin, true })
	require.Len(t, r.Participants, 2)
	assert.Equal(t, core.Entity(1), r.Participants[0].Entity)
	assert.Equal(t, core.Entity(3), r.Participants[1].Entity)
}

func TestKeepStillValidDropsMovedParticipants(t *testing.T) {
	origin := core.Point{X: 5, Y: 6}
	live := map[core.Entity]core.Point{
		1: {X: 6, Y: 6}, // pushed away earlier this tick
		2: origin,
	}
	r := Request{
		Participants: []Participant{
			{Entity: 1, Snapshot: origin},
			{Entity: 2, Snapshot: origin},
		},
		Cause: EnvironmentMove(origin),
	}
	r.KeepStillValid(func(e core.Entity) (core.Point, bool) {
		p, ok := live[e]
		return p, ok
	})
	require.Len(t, r.Participants, 1)
	assert.Equal(t, core.Entity(2), r.Participants[0].Entity)
}

func TestKeepStillValidIgnoresUserMoves(t *testing.T) {
	r := Request{
		Participants: []Participant{
			{Entity: 1, Snapshot: core.Point{X: 1, Y: 1}},
			{Entity: 2, Snapshot: core.Point{X: 7, Y: 2}},
		},
		Cause: UserMove(),
	}
	r.KeepStillValid(func(core.Entity) (core.Point, bool) { return core.Point{}, false })
	assert.Len(t, r.Participants, 2)
}

func TestQueueDrainOrder(t *testing.T) {
	q := NewQueue()
	assert.Nil(t, q.Drain())

	q.Push(Request{Cause: UserMove()})
	q.Push(Request{Cause: EnvironmentMove(core.Point{X: 1})})
	q.Push(Request{Cause: EnvironmentMove(core.Point{X: 2})})
	assert.Equal(t, 3, q.Len())

	got := q.Drain()
	require.Len(t, got, 3)
	assert.True(t, got[0].Cause.IsUser())
	assert.Equal(t, 1, got[1].Cause.Origin.X)
	assert.Equal(t, 2, got[2].Cause.Origin.X)
	assert.Equal(t, 0, q.Len())

	q.Push(Request{})
	q.Clear()
	assert.Equal(t, 0, q.Len())
}

func TestHistoryGroupsCascadeUnderUserTick(t *testing.T) {
	h := NewHistory()
	env := EnvironmentMove(core.Point{X: 5, Y: 6})

	h.Append(rec(UserMove(), 1))
	h.Append(rec(env, 2))
	h.Append(rec(env))

	require.Equal(t, 1, h.Len())
	ticks := h.Ticks()
	require.Len(t, ticks[0], 3)
	assert.True(t, ticks[0][0].Cause.IsUser())
	assert.Equal(t, env, ticks[0][1].Cause)
	assert.True(t, ticks[0][2].Empty())

	h.Append(rec(UserMove(), 1))
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 4, h.RecordCount())
}

func TestHistoryOpensTickForEnvironmentWhenEmpty(t *testing.T) {
	h := NewHistory()
	env := EnvironmentMove(core.Point{X: 3, Y: 5})
	h.Append(rec(env, 4))
	h.Append(rec(env, 4))
	assert.Equal(t, 1, h.Len())

	cause, ok := h.LastCause()
	require.True(t, ok)
	assert.Equal(t, env, cause)
}

func TestHistoryPop(t *testing.T) {
	h := NewHistory()
	_, ok := h.Pop()
	assert.False(t, ok)
	_, ok = h.Last()
	assert.False(t, ok)

	h.Append(rec(UserMove(), 1))
	h.Append(rec(UserMove(), 2))
	tick, ok := h.Pop()
	require.True(t, ok)
	require.Len(t, tick, 1)
	assert.Equal(t, []core.Entity{2}, tick[0].Entities)
	assert.Equal(t, 1, h.Len())

	last, ok := h.Last()
	require.True(t, ok)
	assert.Equal(t, []core.Entity{1}, last.Entities)
}

func TestTicksIsACopy(t *testing.T) {
	h := NewHistory()
	h.Append(rec(UserMove(), 1))
	ticks := h.Ticks()
	ticks[0][0].Entities = nil
	ticks[0] = append(ticks[0], Record{})

	last, _ := h.Last()
	assert.Equal(t, []core.Entity{1}, last.Entities)
	assert.Equal(t, 1, h.RecordCount())
}

func TestRecordUndoDelta(t *testing.T) {
	r := Record{Delta: core.Delta{DX: 0, DY: -1}}
	assert.Equal(t, core.Delta{DX: 0, DY: 1}, r.UndoDelta())
}

func TestCauseString(t *testing.T) {
	assert.Equal(t, "user", UserMove().String())
	assert.Equal(t, "env(5,6)", EnvironmentMove(core.Point{X: 5, Y: 6}).String())
}
