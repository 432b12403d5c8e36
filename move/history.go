package move

// History is an ordered stack of ticks, each tick an ordered list of records
// A user record opens a new tick; any other record joins the most recent tick
type History struct {
	ticks [][]Record
}

// NewHistory creates an empty history
func NewHistory() *History {
	return &History{}
}

// Append files a record under the grouping rule
func (h *History) Append(rec Record) {
	if rec.Cause.IsUser() || len(h.ticks) == 0 {
		h.ticks = append(h.ticks, []Record{rec})
		return
	}
	last := len(h.ticks) - 1
	h.ticks[last] = append(h.ticks[last], rec)
}

// Pop removes and returns the most recent tick
func (h *History) Pop() ([]Record, bool) {
	if len(h.ticks) == 0 {
		return nil, false
	}
	last := len(h.ticks) - 1
	tick := h.ticks[last]
	h.ticks[last] = nil
	h.ticks = h.ticks[:last]
	return tick, true
}

// Last returns the most recently appended record
func (h *History) Last() (Record, bool) {
	if len(h.ticks) == 0 {
		return Record{}, false
	}
	tick := h.ticks[len(h.ticks)-1]
	if len(tick) == 0 {
		return Record{}, false
	}
	return tick[len(tick)-1], true
}

// LastCause returns the cause of the most recently appended record
func (h *History) LastCause() (Cause, bool) {
	rec, ok := h.Last()
	if !ok {
		return Cause{}, false
	}
	return rec.Cause, true
}

// Len returns the number of tick groups
func (h *History) Len() int {
	return len(h.ticks)
}

// RecordCount returns the number of records across all ticks
func (h *History) RecordCount() int {
	n := 0
	for _, tick := range h.ticks {
		n += len(tick)
	}
	return n
}

// Ticks returns a copy of the tick groups, oldest first
func (h *History) Ticks() [][]Record {
	out := make([][]Record, len(h.ticks))
	for i, tick := range h.ticks {
		out[i] = append([]Record(nil), tick...)
	}
	return out
}

// Clear drops every tick
func (h *History) Clear() {
	h.ticks = nil
}
