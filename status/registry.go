package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the simulation systems
const (
	KeyTicks        = "ticks"
	KeyRecords      = "records"
	KeyBlocked      = "blocked"
	KeyMoved        = "moved"
	KeyUndos        = "undos"
	KeyHistoryDepth = "depth"
	KeyLastCause    = "cause"
)

// Registry is the central metrics facade
// Systems cache cell pointers at construction; Update loops write atomics directly
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Strings.Count()
}

// Line formats every metric as "key=value" pairs, ints first, each group sorted by key
func (r *Registry) Line() string {
	var parts []string
	r.Ints.Range(func(key string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", key, v.Load()))
	})
	r.Strings.Range(func(key string, v *AtomicString) {
		parts = append(parts, fmt.Sprintf("%s=%s", key, v.Load()))
	})
	return strings.Join(parts, " ")
}
